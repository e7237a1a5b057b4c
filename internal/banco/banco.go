package banco

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/core/common/validation"
)

// Banco is a bank account usable as an employee payment destination.
type Banco struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	BankName      string    `json:"bank_name" gorm:"column:bank_name;not null"`
	AccountNumber string    `json:"account_number" gorm:"column:account_number;not null"`
	AccountType   string    `json:"account_type" gorm:"column:account_type"`
	SwiftCode     string    `json:"swift_code" gorm:"column:swift_code"`
	Pais          string    `json:"pais" gorm:"column:pais"`
	Sucursal      string    `json:"sucursal" gorm:"column:sucursal"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Banco) TableName() string {
	return "bancos"
}

type BancoDTO struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	SwiftCode     string `json:"swift_code"`
	Pais          string `json:"pais"`
	Sucursal      string `json:"sucursal"`
}

func (dto *BancoDTO) Validate() error {
	dto.BankName = strings.TrimSpace(dto.BankName)
	dto.AccountNumber = strings.TrimSpace(dto.AccountNumber)
	dto.AccountType = strings.TrimSpace(dto.AccountType)
	dto.SwiftCode = strings.TrimSpace(strings.ToUpper(dto.SwiftCode))
	dto.Pais = strings.TrimSpace(dto.Pais)
	dto.Sucursal = strings.TrimSpace(dto.Sucursal)

	v := validation.NewValidator()
	v.Field("bank_name", dto.BankName).Required()
	v.Field("account_number", dto.AccountNumber).Required().MinLength(4).MaxLength(34)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var ErrNotFound = internal.NewNotFoundError("Banco not found", internal.ErrCodeBancoNotFound)
