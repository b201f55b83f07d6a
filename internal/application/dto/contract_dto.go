package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest body para POST /api/contracts.
// Los rangos de duración y años de soporte los valida el dominio.
type CreateContractRequest struct {
	ClientID              string    `json:"client_id" validate:"required,uuid"`
	ProductID             string    `json:"product_id" validate:"required,uuid"`
	SoftwareVersion       string    `json:"software_version" validate:"required,max=50"`
	StartDate             time.Time `json:"start_date" validate:"required"`
	EndDate               time.Time `json:"end_date" validate:"required"`
	SupportExtensionYears int       `json:"support_extension_years"`
}

// ContractResponse contrato en respuestas.
type ContractResponse struct {
	ID                    string          `json:"id"`
	ClientID              string          `json:"client_id"`
	ProductID             string          `json:"product_id"`
	SoftwareVersion       string          `json:"software_version"`
	StartDate             time.Time       `json:"start_date"`
	EndDate               time.Time       `json:"end_date"`
	SupportExtensionYears int             `json:"support_extension_years"`
	Price                 decimal.Decimal `json:"price"`
	IsSigned              bool            `json:"is_signed"`
	IsActive              bool            `json:"is_active"`
	CreatedAt             time.Time       `json:"created_at"`
}

// AddPaymentRequest body para POST /api/contracts/payments.
// Amount se valida en el caso de uso (> 0, hasta dos decimales).
type AddPaymentRequest struct {
	ContractID  string          `json:"contract_id" validate:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date" validate:"required"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID          string          `json:"id"`
	ContractID  string          `json:"contract_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	IsRefunded  bool            `json:"is_refunded"`
}
