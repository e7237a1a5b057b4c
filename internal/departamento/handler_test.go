package departamento_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nominahr/payroll-management/internal/departamento"
	departamentoPostgres "github.com/nominahr/payroll-management/internal/departamento/postgres"
	"github.com/nominahr/payroll-management/internal/transport"
)

func TestDepartamento(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Departamento Suite")
}

var _ = Describe("Departamento Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    departamento.RepositoryAPI
		service *departamento.Service
		handler *departamento.Handler
		router  *chi.Mux
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departamento.Departamento{})
		Expect(err).NotTo(HaveOccurred())

		repo = departamentoPostgres.NewRepository(db)
		service = departamento.NewService(repo, slogger)
		handler = departamento.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		router.Get("/departamentos", handler.List)
		router.Get("/departamentos/{id}", handler.Get)
		router.Post("/departamentos", handler.Create)
		router.Put("/departamentos/{id}", handler.Update)
		router.Delete("/departamentos/{id}", handler.Delete)

		for _, d := range []*departamento.Departamento{
			{Nombre: "Recursos Humanos", Ubicacion: "Quito", Email: "rrhh@nominahr.local", CentroCosto: "CC-100"},
			{Nombre: "Contabilidad", Ubicacion: "Quito", Email: "conta@nominahr.local", CentroCosto: "CC-200"},
		} {
			Expect(repo.Create(d)).To(Succeed())
		}
	})

	It("should list departamentos", func() {
		req := httptest.NewRequest(http.MethodGet, "/departamentos", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var result []*departamento.Departamento
		Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
		Expect(result).To(HaveLen(2))

		names := []string{result[0].Nombre, result[1].Nombre}
		Expect(names).To(ConsistOf("Recursos Humanos", "Contabilidad"))
	})

	It("should create a departamento from a valid payload", func() {
		body, err := json.Marshal(departamento.DepartamentoDTO{
			Nombre:      "Sistemas",
			Ubicacion:   "Guayaquil",
			Email:       "sistemas@nominahr.local",
			CentroCosto: "CC-300",
		})
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, "/departamentos", bytes.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var created departamento.Departamento
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.ID).NotTo(BeEmpty())
		Expect(created.Nombre).To(Equal("Sistemas"))
	})

	It("should reject a payload without nombre", func() {
		req := httptest.NewRequest(http.MethodPost, "/departamentos", bytes.NewReader([]byte(`{"ubicacion":"Quito"}`)))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should reject an invalid email", func() {
		req := httptest.NewRequest(http.MethodPost, "/departamentos", bytes.NewReader([]byte(`{"nombre":"Sistemas","email":"not-an-email"}`)))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should update an existing departamento", func() {
		all, err := repo.GetAll()
		Expect(err).NotTo(HaveOccurred())
		target := all[0]

		body, err := json.Marshal(departamento.DepartamentoDTO{
			Nombre:      target.Nombre,
			Ubicacion:   "Cuenca",
			Email:       target.Email,
			CentroCosto: target.CentroCosto,
		})
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodPut, "/departamentos/"+target.ID, bytes.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		stored, err := repo.GetByID(target.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Ubicacion).To(Equal("Cuenca"))
	})

	It("should return 404 for an unknown id", func() {
		req := httptest.NewRequest(http.MethodGet, "/departamentos/does-not-exist", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should delete a departamento", func() {
		all, err := repo.GetAll()
		Expect(err).NotTo(HaveOccurred())
		target := all[0]

		req := httptest.NewRequest(http.MethodDelete, "/departamentos/"+target.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))

		_, err = repo.GetByID(target.ID)
		Expect(err).To(HaveOccurred())
	})
})
