package direccion

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
)

// Direccion is a standalone postal address record.
type Direccion struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Calle     string    `json:"calle" gorm:"column:calle;not null"`
	Numero    string    `json:"numero" gorm:"column:numero"`
	Piso      string    `json:"piso" gorm:"column:piso"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Direccion) TableName() string {
	return "direcciones"
}

type DireccionDTO struct {
	Calle  string `json:"calle"`
	Numero string `json:"numero"`
	Piso   string `json:"piso"`
}

func (dto *DireccionDTO) Validate() error {
	dto.Calle = strings.TrimSpace(dto.Calle)
	dto.Numero = strings.TrimSpace(dto.Numero)
	dto.Piso = strings.TrimSpace(dto.Piso)
	if dto.Calle == "" {
		return internal.NewValidationFieldError("calle", "calle is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Direccion not found", internal.ErrCodeDireccionNotFound)
