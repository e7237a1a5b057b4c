package novedad

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/common/validation"
)

// Novedad is a payroll adjustment catalog entry: an earning or deduction
// with its amount in centavos and a taxability flag. Nominas copy the
// relevant fields into their line items at computation time.
type Novedad struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	ParametroID    string    `json:"parametro_id" gorm:"column:parametro_id;type:uuid;not null"`
	FechaIngresada time.Time `json:"fecha_ingresada" gorm:"column:fecha_ingresada"`
	TipoNovedad    string    `json:"tipo_novedad" gorm:"column:tipo_novedad"`
	Descripcion    string    `json:"descripcion" gorm:"column:descripcion"`
	MontoAplicado  int64     `json:"monto_aplicado" gorm:"column:monto_aplicado;not null"`
	EsGravable     bool      `json:"es_gravable" gorm:"column:es_gravable"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Novedad) TableName() string {
	return "novedades"
}

type NovedadDTO struct {
	ParametroID    string    `json:"parametro_id"`
	FechaIngresada time.Time `json:"fecha_ingresada"`
	TipoNovedad    string    `json:"tipo_novedad"`
	Descripcion    string    `json:"descripcion"`
	MontoAplicado  int64     `json:"monto_aplicado"`
	EsGravable     bool      `json:"es_gravable"`
}

func (dto *NovedadDTO) Validate() error {
	dto.ParametroID = strings.TrimSpace(dto.ParametroID)
	dto.TipoNovedad = strings.TrimSpace(dto.TipoNovedad)
	dto.Descripcion = strings.TrimSpace(dto.Descripcion)

	v := validation.NewValidator()
	v.Field("parametro_id", dto.ParametroID).Required()
	v.Field("monto_aplicado", dto.MontoAplicado).NonNegative(internal.ErrCodeInvalidAmount)
	v.Field("fecha_ingresada", dto.FechaIngresada).NotFuture()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Novedad not found", internal.ErrCodeNovedadNotFound)
