package empleado

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/banco"
	"github.com/nominahr/payroll-management/internal/core/common/validation"
)

// Labor status values carried on an empleado record.
const (
	StatusInactivo = 0
	StatusActivo   = 1
	StatusLicencia = 2
)

// Empleado is the employment record joining a persona to a departamento
// with its compensation settings. Banking accounts are snapshotted into
// the record so later edits to the account catalog do not rewrite
// history.
type Empleado struct {
	ID                  string        `json:"id" gorm:"primaryKey;type:uuid"`
	PersonaID           string        `json:"persona_id" gorm:"column:persona_id;type:uuid;not null"`
	DepartamentoID      string        `json:"departamento_id" gorm:"column:departamento_id;type:uuid;not null"`
	BankingAccounts     []banco.Banco `json:"banking_accounts" gorm:"column:banking_accounts;serializer:json"`
	FechaIngreso        time.Time     `json:"fecha_ingreso" gorm:"column:fecha_ingreso"`
	SalarioBase         int64         `json:"salario_base" gorm:"column:salario_base;not null"`
	DecimoTercerMensual bool          `json:"decimo_tercer_mensual" gorm:"column:decimo_tercer_mensual"`
	DecimoCuartoMensual bool          `json:"decimo_cuarto_mensual" gorm:"column:decimo_cuarto_mensual"`
	FondoReserva        bool          `json:"fondo_reserva" gorm:"column:fondo_reserva"`
	StatusLaboral       int           `json:"status_laboral" gorm:"column:status_laboral;default:1"`
	CreatedAt           time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt           time.Time     `json:"updated_at" gorm:"column:updated_at"`
}

func (Empleado) TableName() string {
	return "empleados"
}

func (e *Empleado) IsActivo() bool {
	return e.StatusLaboral == StatusActivo
}

type EmpleadoDTO struct {
	PersonaID           string    `json:"persona_id"`
	DepartamentoID      string    `json:"departamento_id"`
	BankingAccountIDs   []string  `json:"banking_account_ids"`
	FechaIngreso        time.Time `json:"fecha_ingreso"`
	SalarioBase         int64     `json:"salario_base"`
	DecimoTercerMensual bool      `json:"decimo_tercer_mensual"`
	DecimoCuartoMensual bool      `json:"decimo_cuarto_mensual"`
	FondoReserva        bool      `json:"fondo_reserva"`
	StatusLaboral       int       `json:"status_laboral"`
}

func (dto *EmpleadoDTO) Validate() error {
	dto.PersonaID = strings.TrimSpace(dto.PersonaID)
	dto.DepartamentoID = strings.TrimSpace(dto.DepartamentoID)
	for i, id := range dto.BankingAccountIDs {
		dto.BankingAccountIDs[i] = strings.TrimSpace(id)
	}

	v := validation.NewValidator()
	v.Field("persona_id", dto.PersonaID).Required()
	v.Field("departamento_id", dto.DepartamentoID).Required()
	v.Field("salario_base", dto.SalarioBase).NonNegative(internal.ErrCodeInvalidAmount)
	v.Field("fecha_ingreso", dto.FechaIngreso).NotFuture()
	v.Field("status_laboral", dto.StatusLaboral).Custom(func(value interface{}) *internal.AppError {
		if s, ok := value.(int); ok {
			if s != StatusInactivo && s != StatusActivo && s != StatusLicencia {
				return internal.NewValidationFieldError("status_laboral", "status_laboral is out of range", internal.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Empleado not found", internal.ErrCodeEmpleadoNotFound)
