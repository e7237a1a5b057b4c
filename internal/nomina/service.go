package nomina

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/events"
	"github.com/nominahr/payroll-management/internal/empleado"
)

type RepositoryAPI interface {
	GetAll() ([]*Nomina, error)
	GetByID(id string) (*Nomina, error)
	GetByEmpleado(empleadoID string) ([]*Nomina, error)
	GetByPeriodo(periodo string) ([]*Nomina, error)
	Create(n *Nomina) error
	Update(n *Nomina) error
	Delete(id string) error
}

type EmpleadoResolver interface {
	GetByID(id string) (*empleado.Empleado, error)
}

// PeriodoGuard reports whether a payroll period is still accepting
// mutations. Closed periods are frozen.
type PeriodoGuard interface {
	IsPeriodoOpen(periodo string) (bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo      RepositoryAPI
	empleados EmpleadoResolver
	periodos  PeriodoGuard
	eventBus  EventPublisher
	logger    *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	empleados EmpleadoResolver,
	periodos PeriodoGuard,
	eventBus EventPublisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		empleados: empleados,
		periodos:  periodos,
		eventBus:  eventBus,
		logger:    logger,
	}
}

func (s *Service) GetAll() ([]*Nomina, error) {
	nominas, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list nominas", "error", err)
		return nil, err
	}
	return nominas, nil
}

func (s *Service) GetByID(id string) (*Nomina, error) {
	n, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return n, nil
}

func (s *Service) GetByEmpleado(empleadoID string) ([]*Nomina, error) {
	return s.repo.GetByEmpleado(empleadoID)
}

func (s *Service) GetByPeriodo(periodo string) ([]*Nomina, error) {
	return s.repo.GetByPeriodo(periodo)
}

func (s *Service) Create(ctx context.Context, dto NominaDTO) (*Nomina, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.empleados.GetByID(dto.EmpleadoID); err != nil {
		return nil, empleado.ErrNotFound
	}
	if err := s.ensurePeriodoOpen(dto.Periodo); err != nil {
		return nil, err
	}

	n := &Nomina{
		ID:         uuid.NewString(),
		EmpleadoID: dto.EmpleadoID,
		Periodo:    dto.Periodo,
	}
	s.recompute(n, dto)

	if err := s.repo.Create(n); err != nil {
		s.logger.Error("failed to create nomina", "error", err,
			"empleado_id", dto.EmpleadoID, "periodo", dto.Periodo)
		return nil, err
	}

	s.logger.Info("nomina created", "nomina_id", n.ID,
		"periodo", n.Periodo, "neto_a_pagar", n.NetoAPagar)
	s.eventBus.Publish(ctx, events.NewNominaCreatedEvent(n.ID, n.EmpleadoID, n.Periodo, n.NetoAPagar))
	return n, nil
}

// Update rebuilds every group and re-derives every total from the
// submitted line items. Partial patching is unsupported.
func (s *Service) Update(ctx context.Context, id string, dto NominaDTO) (*Nomina, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	n, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := s.empleados.GetByID(dto.EmpleadoID); err != nil {
		return nil, empleado.ErrNotFound
	}
	if err := s.ensurePeriodoOpen(n.Periodo); err != nil {
		return nil, err
	}
	if err := s.ensurePeriodoOpen(dto.Periodo); err != nil {
		return nil, err
	}

	n.EmpleadoID = dto.EmpleadoID
	n.Periodo = dto.Periodo
	s.recompute(n, dto)

	if err := s.repo.Update(n); err != nil {
		s.logger.Error("failed to update nomina", "error", err, "nomina_id", id)
		return nil, err
	}

	s.logger.Info("nomina updated", "nomina_id", n.ID,
		"periodo", n.Periodo, "neto_a_pagar", n.NetoAPagar)
	s.eventBus.Publish(ctx, events.NewNominaUpdatedEvent(n.ID, n.EmpleadoID, n.Periodo, n.NetoAPagar))
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.repo.GetByID(id)
	if err != nil {
		return ErrNotFound
	}
	if err := s.ensurePeriodoOpen(n.Periodo); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete nomina", "error", err, "nomina_id", id)
		return err
	}

	s.logger.Info("nomina deleted", "nomina_id", id, "periodo", n.Periodo)
	s.eventBus.Publish(ctx, events.NewNominaDeletedEvent(id, n.Periodo))
	return nil
}

// recompute rebuilds the income and expense groups from the submitted
// line items and re-derives all totals through the aggregator.
func (s *Service) recompute(n *Nomina, dto NominaDTO) {
	now := time.Now()

	ingresos := make([]Ingreso, 0, len(dto.Ingresos))
	for _, grupo := range dto.Ingresos {
		lineas := toLineas(grupo.Novedades)
		totals := ComputeIngresoTotals(lineas)
		ingresos = append(ingresos, Ingreso{
			ID:                uuid.NewString(),
			Novedades:         lineas,
			SubtotalGravado:   totals.SubtotalGravado,
			SubtotalNoGravado: totals.SubtotalNoGravado,
			TotalIngresos:     totals.TotalIngresos,
			FechaCreacion:     now,
		})
	}

	egresos := make([]Egreso, 0, len(dto.Egresos))
	for _, grupo := range dto.Egresos {
		lineas := toLineas(grupo.Novedades)
		egresos = append(egresos, Egreso{
			ID:            uuid.NewString(),
			Novedades:     lineas,
			TotalEgresos:  ComputeEgresoTotal(lineas),
			FechaCreacion: now,
		})
	}

	totals := ComputeNominaTotals(ingresos, egresos)
	n.Ingresos = ingresos
	n.Egresos = egresos
	n.TotalIngresos = totals.TotalIngresos
	n.TotalEgresos = totals.TotalEgresos
	n.NetoAPagar = totals.NetoAPagar
}

func (s *Service) ensurePeriodoOpen(periodo string) error {
	open, err := s.periodos.IsPeriodoOpen(periodo)
	if err != nil {
		return err
	}
	if !open {
		return internal.ErrWorkspaceClosed
	}
	return nil
}

func toLineas(dtos []LineaDTO) []NovedadLinea {
	lineas := make([]NovedadLinea, 0, len(dtos))
	for _, d := range dtos {
		lineas = append(lineas, NovedadLinea{
			NovedadID:      d.NovedadID,
			ParametroID:    d.ParametroID,
			FechaIngresada: d.FechaIngresada,
			TipoNovedad:    d.TipoNovedad,
			Descripcion:    d.Descripcion,
			MontoAplicado:  d.MontoAplicado,
			EsGravable:     d.EsGravable,
		})
	}
	return lineas
}
