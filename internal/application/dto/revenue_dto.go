package dto

import "github.com/shopspring/decimal"

// RevenueRequest body para POST /api/revenue/current y /forecast.
// ProductID vacío = todos los productos; Currency vacío = PLN.
type RevenueRequest struct {
	ProductID string `json:"product_id,omitempty" validate:"omitempty,uuid"`
	Currency  string `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}

// RevenueResponse monto convertido a Currency con la tasa usada.
type RevenueResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}
