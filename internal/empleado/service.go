package empleado

import (
	"log/slog"

	"github.com/nominahr/payroll-management/internal/banco"
	"github.com/nominahr/payroll-management/internal/departamento"
	"github.com/nominahr/payroll-management/internal/persona"
)

type RepositoryAPI interface {
	GetAll() ([]*Empleado, error)
	GetByID(id string) (*Empleado, error)
	GetByPersona(personaID string) (*Empleado, error)
	Create(e *Empleado) error
	Update(e *Empleado) error
	Delete(id string) error
}

type PersonaResolver interface {
	GetByID(id string) (*persona.Persona, error)
}

type DepartamentoResolver interface {
	GetByID(id string) (*departamento.Departamento, error)
}

type BancoResolver interface {
	GetByIDs(ids []string) ([]*banco.Banco, error)
}

type Service struct {
	repo          RepositoryAPI
	personas      PersonaResolver
	departamentos DepartamentoResolver
	bancos        BancoResolver
	logger        *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	personas PersonaResolver,
	departamentos DepartamentoResolver,
	bancos BancoResolver,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		personas:      personas,
		departamentos: departamentos,
		bancos:        bancos,
		logger:        logger,
	}
}

func (s *Service) GetAll() ([]*Empleado, error) {
	empleados, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list empleados", "error", err)
		return nil, err
	}
	return empleados, nil
}

func (s *Service) GetByID(id string) (*Empleado, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// GetByPersona finds the employment record for a persona, or nil when
// the persona has never been hired.
func (s *Service) GetByPersona(personaID string) (*Empleado, error) {
	return s.repo.GetByPersona(personaID)
}

func (s *Service) Create(dto EmpleadoDTO) (*Empleado, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	accounts, err := s.resolveRefs(&dto)
	if err != nil {
		return nil, err
	}

	e := &Empleado{
		PersonaID:           dto.PersonaID,
		DepartamentoID:      dto.DepartamentoID,
		BankingAccounts:     accounts,
		FechaIngreso:        dto.FechaIngreso,
		SalarioBase:         dto.SalarioBase,
		DecimoTercerMensual: dto.DecimoTercerMensual,
		DecimoCuartoMensual: dto.DecimoCuartoMensual,
		FondoReserva:        dto.FondoReserva,
		StatusLaboral:       dto.StatusLaboral,
	}
	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create empleado", "error", err, "persona_id", dto.PersonaID)
		return nil, err
	}

	s.logger.Info("empleado created", "empleado_id", e.ID, "persona_id", e.PersonaID)
	return e, nil
}

func (s *Service) Update(id string, dto EmpleadoDTO) (*Empleado, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	accounts, err := s.resolveRefs(&dto)
	if err != nil {
		return nil, err
	}

	e.PersonaID = dto.PersonaID
	e.DepartamentoID = dto.DepartamentoID
	e.BankingAccounts = accounts
	e.FechaIngreso = dto.FechaIngreso
	e.SalarioBase = dto.SalarioBase
	e.DecimoTercerMensual = dto.DecimoTercerMensual
	e.DecimoCuartoMensual = dto.DecimoCuartoMensual
	e.FondoReserva = dto.FondoReserva
	e.StatusLaboral = dto.StatusLaboral
	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update empleado", "error", err, "empleado_id", id)
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete empleado", "error", err, "empleado_id", id)
		return err
	}

	s.logger.Info("empleado deleted", "empleado_id", id)
	return nil
}

// resolveRefs verifies the persona and departamento references and
// snapshots the banking accounts onto the record.
func (s *Service) resolveRefs(dto *EmpleadoDTO) ([]banco.Banco, error) {
	if _, err := s.personas.GetByID(dto.PersonaID); err != nil {
		return nil, persona.ErrNotFound
	}
	if _, err := s.departamentos.GetByID(dto.DepartamentoID); err != nil {
		return nil, departamento.ErrNotFound
	}

	resolved, err := s.bancos.GetByIDs(dto.BankingAccountIDs)
	if err != nil {
		return nil, err
	}
	accounts := make([]banco.Banco, 0, len(resolved))
	for _, b := range resolved {
		accounts = append(accounts, *b)
	}
	return accounts, nil
}
