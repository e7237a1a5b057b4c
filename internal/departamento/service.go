package departamento

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAll() ([]*Departamento, error)
	GetByID(id string) (*Departamento, error)
	Create(d *Departamento) error
	Update(d *Departamento) error
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

func (s *Service) GetAll() ([]*Departamento, error) {
	departamentos, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list departamentos", "error", err)
		return nil, err
	}
	return departamentos, nil
}

func (s *Service) GetByID(id string) (*Departamento, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *Service) Create(dto DepartamentoDTO) (*Departamento, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d := &Departamento{
		Nombre:      dto.Nombre,
		Ubicacion:   dto.Ubicacion,
		Email:       dto.Email,
		Telefono:    dto.Telefono,
		Cargo:       dto.Cargo,
		CentroCosto: dto.CentroCosto,
	}
	if err := s.repo.Create(d); err != nil {
		s.logger.Error("failed to create departamento", "error", err, "nombre", dto.Nombre)
		return nil, err
	}

	s.logger.Info("departamento created", "departamento_id", d.ID, "nombre", d.Nombre)
	return d, nil
}

func (s *Service) Update(id string, dto DepartamentoDTO) (*Departamento, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	d.Nombre = dto.Nombre
	d.Ubicacion = dto.Ubicacion
	d.Email = dto.Email
	d.Telefono = dto.Telefono
	d.Cargo = dto.Cargo
	d.CentroCosto = dto.CentroCosto
	if err := s.repo.Update(d); err != nil {
		s.logger.Error("failed to update departamento", "error", err, "departamento_id", id)
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
