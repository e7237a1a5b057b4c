package provision

import (
	"log/slog"

	"github.com/nominahr/payroll-management/internal/empleado"
)

type RepositoryAPI interface {
	GetAll() ([]*Provision, error)
	GetByID(id string) (*Provision, error)
	GetByEmpleado(empleadoID string) ([]*Provision, error)
	Create(p *Provision) error
	Update(p *Provision) error
	Delete(id string) error
}

type EmpleadoResolver interface {
	GetByID(id string) (*empleado.Empleado, error)
}

type Service struct {
	repo      RepositoryAPI
	empleados EmpleadoResolver
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, empleados EmpleadoResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		empleados: empleados,
		logger:    logger,
	}
}

func (s *Service) GetAll() ([]*Provision, error) {
	provisiones, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list provisiones", "error", err)
		return nil, err
	}
	return provisiones, nil
}

func (s *Service) GetByID(id string) (*Provision, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) GetByEmpleado(empleadoID string) ([]*Provision, error) {
	return s.repo.GetByEmpleado(empleadoID)
}

func (s *Service) Create(dto ProvisionDTO) (*Provision, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.empleados.GetByID(dto.EmpleadoID); err != nil {
		return nil, empleado.ErrNotFound
	}

	p := &Provision{
		EmpleadoID:    dto.EmpleadoID,
		TipoProvision: dto.TipoProvision,
		Periodo:       dto.Periodo,
		ValorMensual:  dto.ValorMensual,
		Acumulado:     dto.Acumulado,
		IsTransferred: dto.IsTransferred,
	}
	p.Accrue()
	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create provision", "error", err,
			"empleado_id", dto.EmpleadoID, "periodo", dto.Periodo)
		return nil, err
	}

	s.logger.Info("provision created", "provision_id", p.ID,
		"tipo_provision", p.TipoProvision, "total", p.Total)
	return p, nil
}

func (s *Service) Update(id string, dto ProvisionDTO) (*Provision, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := s.empleados.GetByID(dto.EmpleadoID); err != nil {
		return nil, empleado.ErrNotFound
	}

	p.EmpleadoID = dto.EmpleadoID
	p.TipoProvision = dto.TipoProvision
	p.Periodo = dto.Periodo
	p.ValorMensual = dto.ValorMensual
	p.Acumulado = dto.Acumulado
	p.IsTransferred = dto.IsTransferred
	p.Accrue()
	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update provision", "error", err, "provision_id", id)
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
