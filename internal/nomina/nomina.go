package nomina

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/common/validation"
)

// NovedadLinea is one payroll adjustment attached to an income or
// expense group: the amount in centavos and its taxability flag,
// snapshotted from the novedad catalog at computation time. Immutable
// once attached to a computed group.
type NovedadLinea struct {
	NovedadID      string    `json:"novedad_id"`
	ParametroID    string    `json:"parametro_id"`
	FechaIngresada time.Time `json:"fecha_ingresada"`
	TipoNovedad    string    `json:"tipo_novedad"`
	Descripcion    string    `json:"descripcion"`
	MontoAplicado  int64     `json:"monto_aplicado"`
	EsGravable     bool      `json:"es_gravable"`
}

// Ingreso is an earnings group with its derived subtotals.
type Ingreso struct {
	ID                  string         `json:"id"`
	Novedades           []NovedadLinea `json:"novedades"`
	SubtotalGravado     int64          `json:"subtotal_gravado"`
	SubtotalNoGravado   int64          `json:"subtotal_no_gravado"`
	TotalIngresos       int64          `json:"total_ingresos"`
	FechaCreacion       time.Time      `json:"fecha_creacion"`
}

// Egreso is a deductions group. The taxability flag is not read for
// deductions.
type Egreso struct {
	ID            string         `json:"id"`
	Novedades     []NovedadLinea `json:"novedades"`
	TotalEgresos  int64          `json:"total_egresos"`
	FechaCreacion time.Time      `json:"fecha_creacion"`
}

// Nomina is one payroll run for exactly one empleado and one periodo.
// All totals are derived by full recomputation; rows are never patched
// in place.
type Nomina struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	EmpleadoID    string    `json:"empleado_id" gorm:"column:empleado_id;type:uuid;not null"`
	Periodo       string    `json:"periodo" gorm:"column:periodo;not null"`
	Ingresos      []Ingreso `json:"ingresos" gorm:"column:ingresos;serializer:json"`
	Egresos       []Egreso  `json:"egresos" gorm:"column:egresos;serializer:json"`
	TotalIngresos int64     `json:"total_ingresos" gorm:"column:total_ingresos"`
	TotalEgresos  int64     `json:"total_egresos" gorm:"column:total_egresos"`
	NetoAPagar    int64     `json:"neto_a_pagar" gorm:"column:neto_a_pagar"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Nomina) TableName() string {
	return "nominas"
}

type LineaDTO struct {
	NovedadID      string    `json:"novedad_id"`
	ParametroID    string    `json:"parametro_id"`
	FechaIngresada time.Time `json:"fecha_ingresada"`
	TipoNovedad    string    `json:"tipo_novedad"`
	Descripcion    string    `json:"descripcion"`
	MontoAplicado  int64     `json:"monto_aplicado"`
	EsGravable     bool      `json:"es_gravable"`
}

type GrupoDTO struct {
	Novedades []LineaDTO `json:"novedades"`
}

type NominaDTO struct {
	EmpleadoID string     `json:"empleado_id"`
	Periodo    string     `json:"periodo"`
	Ingresos   []GrupoDTO `json:"ingresos"`
	Egresos    []GrupoDTO `json:"egresos"`
}

func (dto *NominaDTO) Validate() error {
	dto.EmpleadoID = strings.TrimSpace(dto.EmpleadoID)
	dto.Periodo = strings.TrimSpace(dto.Periodo)

	v := validation.NewValidator()
	v.Field("empleado_id", dto.EmpleadoID).Required()
	v.Field("periodo", dto.Periodo).Required().Periodo()
	if err := v.Validate(); err != nil {
		return err
	}

	for _, grupo := range dto.Ingresos {
		if err := validateLineas(grupo.Novedades); err != nil {
			return err
		}
	}
	for _, grupo := range dto.Egresos {
		if err := validateLineas(grupo.Novedades); err != nil {
			return err
		}
	}
	return nil
}

// Negative amounts are rejected here so the aggregator only ever sees
// well-formed input.
func validateLineas(lineas []LineaDTO) error {
	for _, linea := range lineas {
		if err := validation.ValidateMonto("monto_aplicado", linea.MontoAplicado); err != nil {
			return err
		}
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Nomina not found", internal.ErrCodeNominaNotFound)
