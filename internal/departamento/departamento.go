package departamento

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/common/validation"
)

// Departamento is an organizational unit with its cost center.
type Departamento struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Nombre      string    `json:"nombre" gorm:"column:nombre;not null"`
	Ubicacion   string    `json:"ubicacion" gorm:"column:ubicacion"`
	Email       string    `json:"email" gorm:"column:email"`
	Telefono    string    `json:"telefono" gorm:"column:telefono"`
	Cargo       string    `json:"cargo" gorm:"column:cargo"`
	CentroCosto string    `json:"centro_costo" gorm:"column:centro_costo"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Departamento) TableName() string {
	return "departamentos"
}

type DepartamentoDTO struct {
	Nombre      string `json:"nombre"`
	Ubicacion   string `json:"ubicacion"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	Cargo       string `json:"cargo"`
	CentroCosto string `json:"centro_costo"`
}

func (dto *DepartamentoDTO) Validate() error {
	dto.Nombre = strings.TrimSpace(dto.Nombre)
	dto.Ubicacion = strings.TrimSpace(dto.Ubicacion)
	dto.Email = strings.TrimSpace(dto.Email)
	dto.Telefono = strings.TrimSpace(dto.Telefono)
	dto.Cargo = strings.TrimSpace(dto.Cargo)
	dto.CentroCosto = strings.TrimSpace(dto.CentroCosto)

	v := validation.NewValidator()
	v.Field("nombre", dto.Nombre).Required()
	v.Field("email", dto.Email).Custom(func(value interface{}) *internal.AppError {
		if s, ok := value.(string); ok && s != "" && !strings.Contains(s, "@") {
			return internal.NewValidationFieldError("email", "email is malformed", internal.ErrCodeValidationFailed)
		}
		return nil
	})
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Departamento not found", internal.ErrCodeDepartamentoNotFound)
