package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateProvider obtiene el tipo de cambio from -> to.
// Devuelve domain.ErrRateNotFound si la moneda destino no existe y
// domain.ErrExchangeService si el proveedor falla.
type ExchangeRateProvider interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}
