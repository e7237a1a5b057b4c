package nomina_test

import (
	"context"
	"errors"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/events"
	"github.com/nominahr/payroll-management/internal/empleado"
	"github.com/nominahr/payroll-management/internal/nomina"
)

type mockNominaRepo struct {
	nominas map[string]*nomina.Nomina
}

func newMockNominaRepo() *mockNominaRepo {
	return &mockNominaRepo{nominas: map[string]*nomina.Nomina{}}
}

func (m *mockNominaRepo) GetAll() ([]*nomina.Nomina, error) {
	out := make([]*nomina.Nomina, 0, len(m.nominas))
	for _, n := range m.nominas {
		out = append(out, n)
	}
	return out, nil
}

func (m *mockNominaRepo) GetByID(id string) (*nomina.Nomina, error) {
	if n, ok := m.nominas[id]; ok {
		return n, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockNominaRepo) GetByEmpleado(empleadoID string) ([]*nomina.Nomina, error) {
	out := []*nomina.Nomina{}
	for _, n := range m.nominas {
		if n.EmpleadoID == empleadoID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNominaRepo) GetByPeriodo(periodo string) ([]*nomina.Nomina, error) {
	out := []*nomina.Nomina{}
	for _, n := range m.nominas {
		if n.Periodo == periodo {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNominaRepo) Create(n *nomina.Nomina) error {
	m.nominas[n.ID] = n
	return nil
}

func (m *mockNominaRepo) Update(n *nomina.Nomina) error {
	m.nominas[n.ID] = n
	return nil
}

func (m *mockNominaRepo) Delete(id string) error {
	delete(m.nominas, id)
	return nil
}

type mockEmpleados struct {
	known map[string]bool
}

func (m *mockEmpleados) GetByID(id string) (*empleado.Empleado, error) {
	if m.known[id] {
		return &empleado.Empleado{ID: id}, nil
	}
	return nil, errors.New("record not found")
}

type mockPeriodos struct {
	closed map[string]bool
}

func (m *mockPeriodos) IsPeriodoOpen(periodo string) (bool, error) {
	return !m.closed[periodo], nil
}

type capturingBus struct {
	published []events.Event
}

func (b *capturingBus) Publish(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

var _ = Describe("Nomina Service", func() {
	var (
		repo      *mockNominaRepo
		empleados *mockEmpleados
		periodos  *mockPeriodos
		bus       *capturingBus
		service   *nomina.Service
		ctx       context.Context
	)

	BeforeEach(func() {
		repo = newMockNominaRepo()
		empleados = &mockEmpleados{known: map[string]bool{"emp-1": true}}
		periodos = &mockPeriodos{closed: map[string]bool{}}
		bus = &capturingBus{}
		service = nomina.NewService(repo, empleados, periodos, bus, slog.Default())
		ctx = context.Background()
	})

	validDTO := func() nomina.NominaDTO {
		return nomina.NominaDTO{
			EmpleadoID: "emp-1",
			Periodo:    "2026-08",
			Ingresos: []nomina.GrupoDTO{{
				Novedades: []nomina.LineaDTO{
					{MontoAplicado: 50000, EsGravable: true, FechaIngresada: time.Now()},
					{MontoAplicado: 5000, EsGravable: false, FechaIngresada: time.Now()},
				},
			}},
			Egresos: []nomina.GrupoDTO{{
				Novedades: []nomina.LineaDTO{
					{MontoAplicado: 12000, FechaIngresada: time.Now()},
				},
			}},
		}
	}

	Describe("Create", func() {
		It("derives all totals from the line items", func() {
			n, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(n.Ingresos).To(HaveLen(1))
			Expect(n.Ingresos[0].SubtotalGravado).To(Equal(int64(50000)))
			Expect(n.Ingresos[0].SubtotalNoGravado).To(Equal(int64(5000)))
			Expect(n.TotalIngresos).To(Equal(int64(55000)))
			Expect(n.TotalEgresos).To(Equal(int64(12000)))
			Expect(n.NetoAPagar).To(Equal(int64(43000)))
		})

		It("publishes a created event", func() {
			n, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(bus.published).To(HaveLen(1))
			Expect(bus.published[0].EventType()).To(Equal(events.NominaCreatedEventType))
			payload := bus.published[0].Payload().(map[string]interface{})
			Expect(payload["nomina_id"]).To(Equal(n.ID))
		})

		It("rejects an unknown empleado", func() {
			dto := validDTO()
			dto.EmpleadoID = "emp-missing"
			_, err := service.Create(ctx, dto)
			Expect(err).To(Equal(empleado.ErrNotFound))
		})

		It("rejects a malformed periodo", func() {
			dto := validDTO()
			dto.Periodo = "agosto-2026"
			_, err := service.Create(ctx, dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects negative line amounts", func() {
			dto := validDTO()
			dto.Ingresos[0].Novedades[0].MontoAplicado = -1
			_, err := service.Create(ctx, dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a closed periodo", func() {
			periodos.closed["2026-08"] = true
			_, err := service.Create(ctx, validDTO())
			Expect(err).To(Equal(internal.ErrWorkspaceClosed))
		})
	})

	Describe("Update", func() {
		It("rebuilds groups and totals wholesale", func() {
			n, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO()
			dto.Ingresos = []nomina.GrupoDTO{{
				Novedades: []nomina.LineaDTO{{MontoAplicado: 10000, EsGravable: true}},
			}}
			dto.Egresos = []nomina.GrupoDTO{{
				Novedades: []nomina.LineaDTO{{MontoAplicado: 15000}},
			}}

			updated, err := service.Update(ctx, n.ID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.TotalIngresos).To(Equal(int64(10000)))
			Expect(updated.TotalEgresos).To(Equal(int64(15000)))
			Expect(updated.NetoAPagar).To(Equal(int64(-5000)))
			Expect(updated.Ingresos).To(HaveLen(1))
			Expect(updated.Ingresos[0].Novedades).To(HaveLen(1))
		})

		It("rejects updates once the periodo is closed", func() {
			n, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			periodos.closed["2026-08"] = true
			_, err = service.Update(ctx, n.ID, validDTO())
			Expect(err).To(Equal(internal.ErrWorkspaceClosed))
		})

		It("returns not found for an unknown nomina", func() {
			_, err := service.Update(ctx, "missing", validDTO())
			Expect(err).To(Equal(nomina.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes the run and publishes a deleted event", func() {
			n, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, n.ID)).To(Succeed())
			_, err = service.GetByID(n.ID)
			Expect(err).To(Equal(nomina.ErrNotFound))

			Expect(bus.published).To(HaveLen(2))
			Expect(bus.published[1].EventType()).To(Equal(events.NominaDeletedEventType))
		})

		It("rejects deletion in a closed periodo", func() {
			n, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			periodos.closed["2026-08"] = true
			Expect(service.Delete(ctx, n.ID)).To(Equal(internal.ErrWorkspaceClosed))
		})
	})

	Describe("queries", func() {
		It("lists runs by empleado and by periodo", func() {
			_, err := service.Create(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			byEmpleado, err := service.GetByEmpleado("emp-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(byEmpleado).To(HaveLen(1))

			byPeriodo, err := service.GetByPeriodo("2026-08")
			Expect(err).NotTo(HaveOccurred())
			Expect(byPeriodo).To(HaveLen(1))

			none, err := service.GetByPeriodo("2026-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(none).To(BeEmpty())
		})
	})
})
