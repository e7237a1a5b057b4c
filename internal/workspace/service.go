package workspace

import (
	"context"
	"log/slog"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/events"
)

type RepositoryAPI interface {
	GetAll() ([]*Workspace, error)
	GetByID(id string) (*Workspace, error)
	GetByPeriodo(periodo string) (*Workspace, error)
	Create(w *Workspace) error
	Update(w *Workspace) error
	Delete(id string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo     RepositoryAPI
	eventBus EventPublisher
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, eventBus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *Service) GetAll() ([]*Workspace, error) {
	workspaces, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list workspaces", "error", err)
		return nil, err
	}
	return workspaces, nil
}

func (s *Service) GetByID(id string) (*Workspace, error) {
	w, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return w, nil
}

// IsPeriodoOpen satisfies the nomina module's period guard. A periodo
// with no workspace is treated as open.
func (s *Service) IsPeriodoOpen(periodo string) (bool, error) {
	w, err := s.repo.GetByPeriodo(periodo)
	if err != nil {
		return false, err
	}
	if w == nil {
		return true, nil
	}
	return w.IsOpen(), nil
}

// Create opens a new payroll period. Nombre and periodo derive from the
// opening date; one workspace per periodo.
func (s *Service) Create(dto WorkspaceDTO) (*Workspace, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	periodo := PeriodoForDate(dto.FechaCreacion)
	if existing, err := s.repo.GetByPeriodo(periodo); err == nil && existing != nil {
		return nil, ErrPeriodoExists
	}

	w := &Workspace{
		Nombre:        NombreForDate(dto.FechaCreacion),
		Periodo:       periodo,
		Nominas:       []NominaRef{},
		FechaCreacion: dto.FechaCreacion,
		Estado:        EstadoAbierto,
	}
	if err := s.repo.Create(w); err != nil {
		s.logger.Error("failed to create workspace", "error", err, "periodo", periodo)
		return nil, err
	}

	s.logger.Info("workspace created", "workspace_id", w.ID,
		"nombre", w.Nombre, "periodo", w.Periodo)
	return w, nil
}

// Close freezes the period. Further nomina mutations in the periodo are
// rejected by the period guard.
func (s *Service) Close(ctx context.Context, id string) (*Workspace, error) {
	w, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !w.IsOpen() {
		return nil, internal.ErrWorkspaceClosed
	}

	now := time.Now()
	w.Estado = EstadoCerrado
	w.FechaCierre = &now
	if err := s.repo.Update(w); err != nil {
		s.logger.Error("failed to close workspace", "error", err, "workspace_id", id)
		return nil, err
	}

	s.logger.Info("workspace closed", "workspace_id", w.ID, "periodo", w.Periodo)
	s.eventBus.Publish(ctx, events.NewWorkspaceClosedEvent(w.ID, w.Periodo))
	return w, nil
}

func (s *Service) Delete(id string) error {
	w, err := s.repo.GetByID(id)
	if err != nil {
		return ErrNotFound
	}
	if len(w.Nominas) > 0 {
		return internal.NewConflictError("Workspace still owns nominas", internal.ErrCodeWorkspaceClosed)
	}
	return s.repo.Delete(id)
}

// RegisterEventHandlers keeps each workspace's run index in sync with
// nomina lifecycle events.
func (s *Service) RegisterEventHandlers(bus *events.EventBus) {
	bus.Subscribe(events.NominaCreatedEventType, s.handleNominaUpserted)
	bus.Subscribe(events.NominaUpdatedEventType, s.handleNominaUpserted)
	bus.Subscribe(events.NominaDeletedEventType, s.handleNominaDeleted)
}

func (s *Service) handleNominaUpserted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload().(map[string]interface{})
	if !ok {
		return nil
	}
	periodo, _ := payload["periodo"].(string)
	nominaID, _ := payload["nomina_id"].(string)
	empleadoID, _ := payload["empleado_id"].(string)
	neto, _ := payload["neto_a_pagar"].(int64)

	w, err := s.repo.GetByPeriodo(periodo)
	if err != nil || w == nil {
		return err
	}

	ref := NominaRef{NominaID: nominaID, EmpleadoID: empleadoID, NetoAPagar: neto}
	replaced := false
	for i, existing := range w.Nominas {
		if existing.NominaID == nominaID {
			w.Nominas[i] = ref
			replaced = true
			break
		}
	}
	if !replaced {
		w.Nominas = append(w.Nominas, ref)
	}
	return s.repo.Update(w)
}

func (s *Service) handleNominaDeleted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload().(map[string]interface{})
	if !ok {
		return nil
	}
	periodo, _ := payload["periodo"].(string)
	nominaID, _ := payload["nomina_id"].(string)

	w, err := s.repo.GetByPeriodo(periodo)
	if err != nil || w == nil {
		return err
	}

	kept := w.Nominas[:0]
	for _, ref := range w.Nominas {
		if ref.NominaID != nominaID {
			kept = append(kept, ref)
		}
	}
	w.Nominas = kept
	return s.repo.Update(w)
}
