package workspace

import (
	"fmt"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
)

// Workspace estado values.
const (
	EstadoAbierto = 1
	EstadoCerrado = 0
)

var meses = [...]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// NominaRef is a workspace-side index entry for a payroll run living in
// the period. Kept in sync by nomina events.
type NominaRef struct {
	NominaID   string `json:"nomina_id"`
	EmpleadoID string `json:"empleado_id"`
	NetoAPagar int64  `json:"neto_a_pagar"`
}

// Workspace is a payroll period container. Nombre and periodo derive
// from the opening date; a closed workspace freezes its nominas.
type Workspace struct {
	ID            string      `json:"id" gorm:"primaryKey;type:uuid"`
	Nombre        string      `json:"nombre" gorm:"column:nombre;not null"`
	Periodo       string      `json:"periodo" gorm:"column:periodo;uniqueIndex;not null"`
	Nominas       []NominaRef `json:"nominas" gorm:"column:nominas;serializer:json"`
	FechaCreacion time.Time   `json:"fecha_creacion" gorm:"column:fecha_creacion"`
	FechaCierre   *time.Time  `json:"fecha_cierre,omitempty" gorm:"column:fecha_cierre"`
	Estado        int         `json:"estado" gorm:"column:estado;default:1"`
	CreatedAt     time.Time   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time   `json:"updated_at" gorm:"column:updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func (w *Workspace) IsOpen() bool {
	return w.Estado == EstadoAbierto
}

// NombreForDate builds the display name for a period opened at the
// given date, e.g. "AGOSTO 2026".
func NombreForDate(t time.Time) string {
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}

// PeriodoForDate derives the YYYY-MM period key.
func PeriodoForDate(t time.Time) string {
	return t.Format("2006-01")
}

type WorkspaceDTO struct {
	FechaCreacion time.Time `json:"fecha_creacion"`
}

func (dto *WorkspaceDTO) Validate() error {
	if dto.FechaCreacion.IsZero() {
		return internal.NewValidationFieldError("fecha_creacion", "fecha_creacion is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

var (
	ErrNotFound      = internal.NewNotFoundError("Workspace not found", internal.ErrCodeWorkspaceNotFound)
	ErrPeriodoExists = internal.NewConflictError("A workspace already exists for this periodo", internal.ErrCodeDuplicatePeriodo)
)
