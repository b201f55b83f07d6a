package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractPayment abono a un contrato. IsRefunded solo lo activa el barrido de expiración.
type ContractPayment struct {
	ID          string
	ContractID  string
	Amount      decimal.Decimal
	PaymentDate time.Time
	IsRefunded  bool
	CreatedAt   time.Time
}
