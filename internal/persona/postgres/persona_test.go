package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nominahr/payroll-management/internal/persona"
	personaPostgres "github.com/nominahr/payroll-management/internal/persona/postgres"
)

func TestPersonaPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Persona Postgres Suite")
}

var _ = Describe("Persona PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo persona.RepositoryAPI
	)

	newPersona := func(dni, nombre, apellido string) *persona.Persona {
		return &persona.Persona{
			DNI:             dni,
			PrimerNombre:    nombre,
			ApellidoPaterno: apellido,
			DateBirthday:    time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
			Correo:          []string{nombre + "@example.com"},
			Telefono:        []string{"0991234567"},
			Direcciones: []persona.DireccionEntry{
				{Calle: "Av. Amazonas", Numero: "120", Piso: "3"},
			},
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&persona.Persona{})
		Expect(err).NotTo(HaveOccurred())

		repo = personaPostgres.NewRepository(db)
	})

	Describe("Create", func() {
		It("should assign an id and persist the record", func() {
			p := newPersona("1712345678", "Maria", "Lopez")

			err := repo.Create(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).NotTo(BeEmpty())
			Expect(p.CreatedAt).NotTo(BeZero())
		})

		It("should round-trip the serialized collections", func() {
			p := newPersona("1712345678", "Maria", "Lopez")
			p.Correo = []string{"maria@example.com", "mlopez@work.ec"}

			err := repo.Create(p)
			Expect(err).NotTo(HaveOccurred())

			stored, err := repo.GetByID(p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Correo).To(Equal([]string{"maria@example.com", "mlopez@work.ec"}))
			Expect(stored.Direcciones).To(HaveLen(1))
			Expect(stored.Direcciones[0].Calle).To(Equal("Av. Amazonas"))
		})

		It("should enforce the unique constraint on dni", func() {
			err := repo.Create(newPersona("1712345678", "Maria", "Lopez"))
			Expect(err).NotTo(HaveOccurred())

			err = repo.Create(newPersona("1712345678", "Mario", "Lara"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetAll", func() {
		BeforeEach(func() {
			for _, p := range []*persona.Persona{
				newPersona("1712345678", "Maria", "Zambrano"),
				newPersona("1798765432", "Carlos", "Andrade"),
				newPersona("1755555555", "Lucia", "Mendoza"),
			} {
				Expect(repo.Create(p)).To(Succeed())
			}
		})

		It("should order by apellido then nombre", func() {
			personas, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(personas).To(HaveLen(3))
			Expect(personas[0].ApellidoPaterno).To(Equal("Andrade"))
			Expect(personas[1].ApellidoPaterno).To(Equal("Mendoza"))
			Expect(personas[2].ApellidoPaterno).To(Equal("Zambrano"))
		})
	})

	Describe("GetByDNI", func() {
		BeforeEach(func() {
			Expect(repo.Create(newPersona("1712345678", "Maria", "Lopez"))).To(Succeed())
		})

		It("should find a persona by dni", func() {
			result, err := repo.GetByDNI("1712345678")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).NotTo(BeNil())
			Expect(result.PrimerNombre).To(Equal("Maria"))
		})

		It("should return nil without error when the dni is unknown", func() {
			result, err := repo.GetByDNI("0000000000")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})

	Describe("Update", func() {
		var p *persona.Persona

		BeforeEach(func() {
			p = newPersona("1712345678", "Maria", "Lopez")
			Expect(repo.Create(p)).To(Succeed())
		})

		It("should persist field changes", func() {
			p.SegundoNombre = "Fernanda"
			p.Telefono = append(p.Telefono, "022345678")

			err := repo.Update(p)
			Expect(err).NotTo(HaveOccurred())

			stored, err := repo.GetByID(p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.SegundoNombre).To(Equal("Fernanda"))
			Expect(stored.Telefono).To(HaveLen(2))
		})
	})

	Describe("Delete", func() {
		It("should remove the record", func() {
			p := newPersona("1712345678", "Maria", "Lopez")
			Expect(repo.Create(p)).To(Succeed())

			err := repo.Delete(p.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.GetByID(p.ID)
			Expect(err).To(HaveOccurred())
		})
	})
})
