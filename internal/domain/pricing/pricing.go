// Package pricing contiene las reglas de precio y vigencia de contratos (servicio de dominio puro).
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// Límites de contrato.
const (
	MinDurationDays  = 3
	MaxDurationDays  = 30
	MaxSupportYears  = 3
	hoursPerDay      = 24
	moneyDecimalsPLN = 2
)

var (
	basePrice        = decimal.NewFromInt(10000)
	supportYearPrice = decimal.NewFromInt(1000)
	loyaltyRate      = decimal.RequireFromString("0.05")
	hundred          = decimal.NewFromInt(100)
)

// ValidateTerms valida duración [3,30] días y años de soporte [0,3], en ese orden.
func ValidateTerms(start, end time.Time, supportYears int) error {
	days := end.Sub(start).Hours() / hoursPerDay
	if days < MinDurationDays || days > MaxDurationDays {
		return domain.ErrInvalidDuration
	}
	if supportYears < 0 || supportYears > MaxSupportYears {
		return domain.ErrInvalidSupportYears
	}
	return nil
}

// BasePrice precio sin descuentos: 10000 + 1000 por año de soporte.
func BasePrice(supportYears int) decimal.Decimal {
	return basePrice.Add(supportYearPrice.Mul(decimal.NewFromInt(int64(supportYears))))
}

// BestDiscount devuelve el descuento vigente en at con mayor porcentaje, o nil.
func BestDiscount(discounts []*entity.Discount, at time.Time) *entity.Discount {
	var best *entity.Discount
	for _, d := range discounts {
		if d == nil || !d.ActiveAt(at) {
			continue
		}
		if best == nil || d.Percentage.GreaterThan(best.Percentage) {
			best = d
		}
	}
	return best
}

// Quote desglose del cálculo de precio.
type Quote struct {
	BasePrice      decimal.Decimal
	Discount       *entity.Discount
	LoyaltyApplied bool
	Price          decimal.Decimal
}

// Calculate aplica el mejor descuento vigente y luego, si el cliente es leal, un 5% adicional.
// Las dos deducciones son multiplicativas e independientes; solo el resultado final se redondea.
func Calculate(supportYears int, discounts []*entity.Discount, loyal bool, at time.Time) Quote {
	q := Quote{BasePrice: BasePrice(supportYears)}
	price := q.BasePrice
	if best := BestDiscount(discounts, at); best != nil {
		q.Discount = best
		price = price.Sub(price.Mul(best.Percentage).Div(hundred))
	}
	if loyal {
		q.LoyaltyApplied = true
		price = price.Sub(price.Mul(loyaltyRate))
	}
	q.Price = price.Round(moneyDecimalsPLN)
	return q
}
