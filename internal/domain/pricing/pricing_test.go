package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/pricing"
)

var now = time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)

func discount(pct string, start, end time.Time) *entity.Discount {
	return &entity.Discount{Percentage: decimal.RequireFromString(pct), Start: start, End: end}
}

func TestValidateTerms_DuracionEnRango(t *testing.T) {
	assert.NoError(t, pricing.ValidateTerms(now, now.AddDate(0, 0, 3), 0), "3 días es el mínimo permitido")
	assert.NoError(t, pricing.ValidateTerms(now, now.AddDate(0, 0, 30), 3), "30 días es el máximo permitido")
}

func TestValidateTerms_DuracionFueraDeRango(t *testing.T) {
	err := pricing.ValidateTerms(now, now.AddDate(0, 0, 2), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.ErrorIs(t, pricing.ValidateTerms(now, now.AddDate(0, 0, 31), 0), domain.ErrInvalidDuration)
	assert.ErrorIs(t, pricing.ValidateTerms(now, now.AddDate(0, 0, -5), 0), domain.ErrInvalidDuration,
		"fecha fin anterior al inicio nunca es válida")
}

func TestValidateTerms_DuracionSeValidaAntesQueSoporte(t *testing.T) {
	err := pricing.ValidateTerms(now, now.AddDate(0, 0, 1), 9)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestValidateTerms_AniosDeSoporte(t *testing.T) {
	assert.ErrorIs(t, pricing.ValidateTerms(now, now.AddDate(0, 0, 10), 4), domain.ErrInvalidSupportYears)
	assert.ErrorIs(t, pricing.ValidateTerms(now, now.AddDate(0, 0, 10), -1), domain.ErrInvalidSupportYears)
}

func TestBasePrice(t *testing.T) {
	assert.True(t, pricing.BasePrice(0).Equal(decimal.NewFromInt(10000)))
	assert.True(t, pricing.BasePrice(3).Equal(decimal.NewFromInt(13000)))
}

func TestBestDiscount_EligeMayorVigente(t *testing.T) {
	list := []*entity.Discount{
		discount("10", now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)),
		discount("50", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0)), // vencido
		discount("25", now, now),                                     // extremos incluidos
	}
	best := pricing.BestDiscount(list, now)
	require.NotNil(t, best)
	assert.True(t, best.Percentage.Equal(decimal.NewFromInt(25)))
}

func TestBestDiscount_SinVigentes(t *testing.T) {
	list := []*entity.Discount{discount("10", now.AddDate(0, 0, 1), now.AddDate(0, 0, 5))}
	assert.Nil(t, pricing.BestDiscount(list, now))
	assert.Nil(t, pricing.BestDiscount(nil, now))
}

func TestCalculate_SinDescuentoNiLealtad(t *testing.T) {
	q := pricing.Calculate(0, nil, false, now)
	assert.True(t, q.Price.Equal(decimal.NewFromInt(10000)), "precio: %s", q.Price)
	assert.Nil(t, q.Discount)
	assert.False(t, q.LoyaltyApplied)
}

// 12000 con 20% → 9600; cliente leal → 9600 * 0.95 = 9120.
func TestCalculate_DescuentoYLealtadSonMultiplicativos(t *testing.T) {
	list := []*entity.Discount{discount("20", now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))}

	q := pricing.Calculate(2, list, false, now)
	assert.True(t, q.BasePrice.Equal(decimal.NewFromInt(12000)))
	assert.True(t, q.Price.Equal(decimal.NewFromInt(9600)), "precio con descuento: %s", q.Price)

	q = pricing.Calculate(2, list, true, now)
	assert.True(t, q.Price.Equal(decimal.NewFromInt(9120)), "precio con lealtad: %s", q.Price)
	assert.True(t, q.LoyaltyApplied)
}

func TestCalculate_SoloLealtad(t *testing.T) {
	q := pricing.Calculate(1, nil, true, now)
	assert.True(t, q.Price.Equal(decimal.NewFromInt(10450)), "11000 * 0.95 = 10450, obtenido %s", q.Price)
}

func TestCalculate_RedondeoADosDecimales(t *testing.T) {
	list := []*entity.Discount{discount("33.333", now, now.AddDate(0, 0, 1))}
	q := pricing.Calculate(0, list, false, now)
	assert.Equal(t, "6666.70", q.Price.StringFixed(2))
}
