package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSoftwareRequest body para POST /api/software.
type CreateSoftwareRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Version     string `json:"version" validate:"required,max=50"`
	Category    string `json:"category" validate:"required,max=50"`
}

// SoftwareResponse producto del catálogo.
type SoftwareResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Category    string `json:"category"`
}

// CreateDiscountRequest body para POST /api/software/discounts.
// Percentage se valida en el caso de uso (0 < p <= 100).
type CreateDiscountRequest struct {
	ProductID  string          `json:"product_id" validate:"required,uuid"`
	Name       string          `json:"name" validate:"required,max=100"`
	Percentage decimal.Decimal `json:"percentage"`
	Start      time.Time       `json:"start" validate:"required"`
	End        time.Time       `json:"end" validate:"required,gtefield=Start"`
}

// DiscountResponse descuento en respuestas.
type DiscountResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
}
