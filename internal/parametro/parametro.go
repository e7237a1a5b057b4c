package parametro

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
)

// Parametro is a payroll parameter catalog entry. Novedades reference a
// parametro to classify the adjustment they apply.
type Parametro struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Tipo        string    `json:"tipo" gorm:"column:tipo;not null"`
	Descripcion string    `json:"descripcion" gorm:"column:descripcion"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Parametro) TableName() string {
	return "parametros"
}

type ParametroDTO struct {
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
}

func (dto *ParametroDTO) Validate() error {
	dto.Tipo = strings.TrimSpace(dto.Tipo)
	dto.Descripcion = strings.TrimSpace(dto.Descripcion)
	if dto.Tipo == "" {
		return internal.NewValidationFieldError("tipo", "tipo is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Parametro not found", internal.ErrCodeParametroNotFound)
