package workspace_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/events"
	"github.com/nominahr/payroll-management/internal/workspace"
)

func TestWorkspace(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Workspace Suite")
}

type mockRepo struct {
	workspaces map[string]*workspace.Workspace
}

func newMockRepo() *mockRepo {
	return &mockRepo{workspaces: map[string]*workspace.Workspace{}}
}

func (m *mockRepo) GetAll() ([]*workspace.Workspace, error) {
	out := make([]*workspace.Workspace, 0, len(m.workspaces))
	for _, w := range m.workspaces {
		out = append(out, w)
	}
	return out, nil
}

func (m *mockRepo) GetByID(id string) (*workspace.Workspace, error) {
	if w, ok := m.workspaces[id]; ok {
		return w, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) GetByPeriodo(periodo string) (*workspace.Workspace, error) {
	for _, w := range m.workspaces {
		if w.Periodo == periodo {
			return w, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) Create(w *workspace.Workspace) error {
	if w.ID == "" {
		w.ID = "ws-" + w.Periodo
	}
	m.workspaces[w.ID] = w
	return nil
}

func (m *mockRepo) Update(w *workspace.Workspace) error {
	m.workspaces[w.ID] = w
	return nil
}

func (m *mockRepo) Delete(id string) error {
	delete(m.workspaces, id)
	return nil
}

var _ = Describe("Workspace Service", func() {
	var (
		repo    *mockRepo
		bus     *events.EventBus
		service *workspace.Service
		ctx     context.Context
	)

	agosto := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		repo = newMockRepo()
		bus = events.NewEventBus(slog.Default())
		service = workspace.NewService(repo, bus, slog.Default())
		service.RegisterEventHandlers(bus)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("derives nombre and periodo from the opening date", func() {
			w, err := service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto})
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Nombre).To(Equal("AGOSTO 2026"))
			Expect(w.Periodo).To(Equal("2026-08"))
			Expect(w.IsOpen()).To(BeTrue())
		})

		It("rejects a second workspace for the same periodo", func() {
			_, err := service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto.AddDate(0, 0, 14)})
			Expect(err).To(Equal(workspace.ErrPeriodoExists))
		})

		It("requires an opening date", func() {
			_, err := service.Create(workspace.WorkspaceDTO{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Close", func() {
		It("freezes the periodo", func() {
			w, err := service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto})
			Expect(err).NotTo(HaveOccurred())

			closed, err := service.Close(ctx, w.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(closed.IsOpen()).To(BeFalse())
			Expect(closed.FechaCierre).NotTo(BeNil())

			open, err := service.IsPeriodoOpen("2026-08")
			Expect(err).NotTo(HaveOccurred())
			Expect(open).To(BeFalse())
		})

		It("rejects closing an already closed workspace", func() {
			w, err := service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Close(ctx, w.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Close(ctx, w.ID)
			Expect(err).To(Equal(internal.ErrWorkspaceClosed))
		})
	})

	Describe("IsPeriodoOpen", func() {
		It("treats a periodo without a workspace as open", func() {
			open, err := service.IsPeriodoOpen("2026-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(open).To(BeTrue())
		})
	})

	Describe("nomina index sync", func() {
		It("tracks created, updated, and deleted runs", func() {
			w, err := service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto})
			Expect(err).NotTo(HaveOccurred())

			err = bus.PublishSync(ctx, events.NewNominaCreatedEvent("nom-1", "emp-1", "2026-08", 43000))
			Expect(err).NotTo(HaveOccurred())

			stored, err := service.GetByID(w.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Nominas).To(HaveLen(1))
			Expect(stored.Nominas[0].NetoAPagar).To(Equal(int64(43000)))

			err = bus.PublishSync(ctx, events.NewNominaUpdatedEvent("nom-1", "emp-1", "2026-08", -5000))
			Expect(err).NotTo(HaveOccurred())

			stored, _ = service.GetByID(w.ID)
			Expect(stored.Nominas).To(HaveLen(1))
			Expect(stored.Nominas[0].NetoAPagar).To(Equal(int64(-5000)))

			err = bus.PublishSync(ctx, events.NewNominaDeletedEvent("nom-1", "2026-08"))
			Expect(err).NotTo(HaveOccurred())

			stored, _ = service.GetByID(w.ID)
			Expect(stored.Nominas).To(BeEmpty())
		})

		It("ignores events for periodos without a workspace", func() {
			err := bus.PublishSync(ctx, events.NewNominaCreatedEvent("nom-1", "emp-1", "2030-01", 100))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Delete", func() {
		It("refuses to delete a workspace that still owns runs", func() {
			w, err := service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto})
			Expect(err).NotTo(HaveOccurred())

			Expect(bus.PublishSync(ctx, events.NewNominaCreatedEvent("nom-1", "emp-1", "2026-08", 100))).To(Succeed())
			Expect(service.Delete(w.ID)).To(HaveOccurred())
		})

		It("deletes an empty workspace", func() {
			w, err := service.Create(workspace.WorkspaceDTO{FechaCreacion: agosto})
			Expect(err).NotTo(HaveOccurred())
			Expect(service.Delete(w.ID)).To(Succeed())
		})
	})
})
