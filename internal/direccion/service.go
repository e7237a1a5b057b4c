package direccion

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAll() ([]*Direccion, error)
	GetByID(id string) (*Direccion, error)
	Create(d *Direccion) error
	Update(d *Direccion) error
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

func (s *Service) GetAll() ([]*Direccion, error) {
	direcciones, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list direcciones", "error", err)
		return nil, err
	}
	return direcciones, nil
}

func (s *Service) GetByID(id string) (*Direccion, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *Service) Create(dto DireccionDTO) (*Direccion, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d := &Direccion{
		Calle:  dto.Calle,
		Numero: dto.Numero,
		Piso:   dto.Piso,
	}
	if err := s.repo.Create(d); err != nil {
		s.logger.Error("failed to create direccion", "error", err)
		return nil, err
	}

	s.logger.Info("direccion created", "direccion_id", d.ID)
	return d, nil
}

func (s *Service) Update(id string, dto DireccionDTO) (*Direccion, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	d.Calle = dto.Calle
	d.Numero = dto.Numero
	d.Piso = dto.Piso
	if err := s.repo.Update(d); err != nil {
		s.logger.Error("failed to update direccion", "error", err, "direccion_id", id)
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
