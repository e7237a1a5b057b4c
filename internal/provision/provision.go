package provision

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/common/validation"
)

// Provision is an employer-side monthly accrual for an empleado, one
// row per provision type and period. Amounts are centavos.
type Provision struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	EmpleadoID    string    `json:"empleado_id" gorm:"column:empleado_id;type:uuid;not null"`
	TipoProvision string    `json:"tipo_provision" gorm:"column:tipo_provision;not null"`
	Periodo       string    `json:"periodo" gorm:"column:periodo;not null"`
	ValorMensual  int64     `json:"valor_mensual" gorm:"column:valor_mensual"`
	Acumulado     int64     `json:"acumulado" gorm:"column:acumulado"`
	Total         int64     `json:"total" gorm:"column:total"`
	IsTransferred bool      `json:"is_transferred" gorm:"column:is_transferred"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Provision) TableName() string {
	return "provisiones"
}

// Accrue derives the running total from the carried accumulation plus
// this month's value.
func (p *Provision) Accrue() {
	p.Total = p.Acumulado + p.ValorMensual
}

type ProvisionDTO struct {
	EmpleadoID    string `json:"empleado_id"`
	TipoProvision string `json:"tipo_provision"`
	Periodo       string `json:"periodo"`
	ValorMensual  int64  `json:"valor_mensual"`
	Acumulado     int64  `json:"acumulado"`
	IsTransferred bool   `json:"is_transferred"`
}

func (dto *ProvisionDTO) Validate() error {
	dto.EmpleadoID = strings.TrimSpace(dto.EmpleadoID)
	dto.TipoProvision = strings.TrimSpace(dto.TipoProvision)
	dto.Periodo = strings.TrimSpace(dto.Periodo)

	v := validation.NewValidator()
	v.Field("empleado_id", dto.EmpleadoID).Required()
	v.Field("tipo_provision", dto.TipoProvision).Required()
	v.Field("periodo", dto.Periodo).Required().Periodo()
	v.Field("valor_mensual", dto.ValorMensual).NonNegative(internal.ErrCodeInvalidAmount)
	v.Field("acumulado", dto.Acumulado).NonNegative(internal.ErrCodeInvalidAmount)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Provision not found", internal.ErrCodeProvisionNotFound)
