package parametro

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAll() ([]*Parametro, error)
	GetByID(id string) (*Parametro, error)
	Create(p *Parametro) error
	Update(p *Parametro) error
	Delete(id string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Parametro, error) {
	parametros, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list parametros", "error", err)
		return nil, err
	}
	return parametros, nil
}

func (s *Service) GetByID(id string) (*Parametro, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(dto ParametroDTO) (*Parametro, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p := &Parametro{
		Tipo:        dto.Tipo,
		Descripcion: dto.Descripcion,
	}
	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create parametro", "error", err, "tipo", dto.Tipo)
		return nil, err
	}

	s.logger.Info("parametro created", "parametro_id", p.ID, "tipo", p.Tipo)
	return p, nil
}

func (s *Service) Update(id string, dto ParametroDTO) (*Parametro, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	p.Tipo = dto.Tipo
	p.Descripcion = dto.Descripcion
	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update parametro", "error", err, "parametro_id", id)
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
