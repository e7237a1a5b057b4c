package persona

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/common/validation"
)

// DireccionEntry is an address embedded in a persona record. Personas
// carry their addresses inline rather than referencing the standalone
// address book.
type DireccionEntry struct {
	Calle  string `json:"calle"`
	Numero string `json:"numero"`
	Piso   string `json:"piso"`
}

// Persona is a person registry entry identified by DNI.
type Persona struct {
	ID              string           `json:"id" gorm:"primaryKey;type:uuid"`
	DNI             string           `json:"dni" gorm:"column:dni;uniqueIndex;not null"`
	Gender          string           `json:"gender" gorm:"column:gender"`
	PrimerNombre    string           `json:"primer_nombre" gorm:"column:primer_nombre;not null"`
	SegundoNombre   string           `json:"segundo_nombre" gorm:"column:segundo_nombre"`
	ApellidoPaterno string           `json:"apellido_paterno" gorm:"column:apellido_paterno;not null"`
	ApellidoMaterno string           `json:"apellido_materno" gorm:"column:apellido_materno"`
	DateBirthday    time.Time        `json:"date_birthday" gorm:"column:date_birthday"`
	Edad            int              `json:"edad" gorm:"column:edad"`
	Correo          []string         `json:"correo" gorm:"column:correo;serializer:json"`
	Telefono        []string         `json:"telefono" gorm:"column:telefono;serializer:json"`
	Direcciones     []DireccionEntry `json:"direcciones" gorm:"column:direcciones;serializer:json"`
	CreatedAt       time.Time        `json:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time        `json:"updated_at" gorm:"column:updated_at"`
}

func (Persona) TableName() string {
	return "personas"
}

// NombreCompleto joins the non-empty name parts in display order.
func (p *Persona) NombreCompleto() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{p.PrimerNombre, p.SegundoNombre, p.ApellidoPaterno, p.ApellidoMaterno} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

type PersonaDTO struct {
	DNI             string           `json:"dni"`
	Gender          string           `json:"gender"`
	PrimerNombre    string           `json:"primer_nombre"`
	SegundoNombre   string           `json:"segundo_nombre"`
	ApellidoPaterno string           `json:"apellido_paterno"`
	ApellidoMaterno string           `json:"apellido_materno"`
	DateBirthday    time.Time        `json:"date_birthday"`
	Correo          []string         `json:"correo"`
	Telefono        []string         `json:"telefono"`
	Direcciones     []DireccionEntry `json:"direcciones"`
}

func (dto *PersonaDTO) Validate() error {
	dto.DNI = strings.TrimSpace(dto.DNI)
	dto.Gender = strings.TrimSpace(dto.Gender)
	dto.PrimerNombre = strings.TrimSpace(dto.PrimerNombre)
	dto.SegundoNombre = strings.TrimSpace(dto.SegundoNombre)
	dto.ApellidoPaterno = strings.TrimSpace(dto.ApellidoPaterno)
	dto.ApellidoMaterno = strings.TrimSpace(dto.ApellidoMaterno)
	for i, c := range dto.Correo {
		dto.Correo[i] = strings.TrimSpace(strings.ToLower(c))
	}
	for i, t := range dto.Telefono {
		dto.Telefono[i] = strings.TrimSpace(t)
	}
	for i := range dto.Direcciones {
		dto.Direcciones[i].Calle = strings.TrimSpace(dto.Direcciones[i].Calle)
		dto.Direcciones[i].Numero = strings.TrimSpace(dto.Direcciones[i].Numero)
		dto.Direcciones[i].Piso = strings.TrimSpace(dto.Direcciones[i].Piso)
	}

	v := validation.NewValidator()
	v.Field("dni", dto.DNI).Required().MinLength(5).MaxLength(20)
	v.Field("primer_nombre", dto.PrimerNombre).Required()
	v.Field("apellido_paterno", dto.ApellidoPaterno).Required()
	v.Field("date_birthday", dto.DateBirthday).NotFuture()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// EdadAt derives the age at the given reference time.
func (dto *PersonaDTO) EdadAt(now time.Time) int {
	if dto.DateBirthday.IsZero() {
		return 0
	}
	edad := now.Year() - dto.DateBirthday.Year()
	if now.YearDay() < dto.DateBirthday.YearDay() {
		edad--
	}
	if edad < 0 {
		return 0
	}
	return edad
}

var (
	ErrNotFound     = internal.NewNotFoundError("Persona not found", internal.ErrCodePersonaNotFound)
	ErrDuplicateDNI = internal.NewConflictError("DNI already registered", internal.ErrCodeDuplicateDNI)
)
