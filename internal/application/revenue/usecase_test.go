package revenue_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/application/revenue"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/infrastructure/memory"
)

// stubRates proveedor de tipos de cambio en memoria.
type stubRates struct {
	rates map[string]decimal.Decimal
	err   error
	calls int
}

func (s *stubRates) Rate(_ context.Context, from, to string) (decimal.Decimal, error) {
	s.calls++
	if s.err != nil {
		return decimal.Zero, s.err
	}
	r, ok := s.rates[from+"->"+to]
	if !ok {
		return decimal.Zero, domain.ErrRateNotFound
	}
	return r, nil
}

const productA = "11111111-1111-1111-1111-111111111111"

func seed(t *testing.T) memory.Repositories {
	t.Helper()
	repos := memory.NewStore().Repositories()
	add := func(product string, price int64, signed, active bool) {
		now := time.Now()
		require.NoError(t, repos.Contracts.Create(context.Background(), &entity.Contract{
			ID:        uuid.New().String(),
			ClientID:  uuid.New().String(),
			ProductID: product,
			StartDate: now,
			EndDate:   now.Add(5 * 24 * time.Hour),
			Price:     decimal.NewFromInt(price),
			IsSigned:  signed,
			IsActive:  active,
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}
	add(productA, 5000, true, true)            // firmado
	add(productA, 3000, false, true)           // activo sin firmar
	add(productA, 2000, false, false)          // dado de baja
	add(uuid.New().String(), 7000, true, true) // otro producto
	return repos
}

func TestRevenue_ActualVsPronostico(t *testing.T) {
	rates := &stubRates{}
	uc := revenue.NewRevenueUseCase(seed(t).Contracts, rates)

	current, err := uc.Current(context.Background(), dto.RevenueRequest{ProductID: productA})
	require.NoError(t, err)
	forecast, err := uc.Forecast(context.Background(), dto.RevenueRequest{ProductID: productA})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(5000).Equal(current.Amount), "actual=%s", current.Amount)
	assert.True(t, decimal.NewFromInt(8000).Equal(forecast.Amount), "pronóstico=%s", forecast.Amount)
	assert.Equal(t, "PLN", current.Currency)
	assert.True(t, decimal.NewFromInt(1).Equal(current.ExchangeRate))
	assert.Zero(t, rates.calls, "PLN no consulta el proveedor")
}

func TestRevenue_SinProductoSumaTodos(t *testing.T) {
	uc := revenue.NewRevenueUseCase(seed(t).Contracts, &stubRates{})

	current, err := uc.Current(context.Background(), dto.RevenueRequest{Currency: "pln"})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(12000).Equal(current.Amount))
	assert.Equal(t, "PLN", current.Currency)
}

func TestRevenue_ConversionDeMoneda(t *testing.T) {
	rates := &stubRates{rates: map[string]decimal.Decimal{"PLN->EUR": decimal.RequireFromString("0.25")}}
	uc := revenue.NewRevenueUseCase(seed(t).Contracts, rates)

	out, err := uc.Current(context.Background(), dto.RevenueRequest{ProductID: productA, Currency: "eur"})
	require.NoError(t, err)

	assert.Equal(t, "EUR", out.Currency)
	assert.True(t, decimal.NewFromInt(1250).Equal(out.Amount), "monto=%s", out.Amount)
	assert.True(t, decimal.RequireFromString("0.25").Equal(out.ExchangeRate))
}

func TestRevenue_TasaInexistente(t *testing.T) {
	uc := revenue.NewRevenueUseCase(seed(t).Contracts, &stubRates{})

	_, err := uc.Forecast(context.Background(), dto.RevenueRequest{Currency: "XYZ"})

	assert.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestRevenue_ProveedorCaido(t *testing.T) {
	uc := revenue.NewRevenueUseCase(seed(t).Contracts, &stubRates{err: domain.ErrExchangeService})

	_, err := uc.Current(context.Background(), dto.RevenueRequest{Currency: "USD"})

	assert.ErrorIs(t, err, domain.ErrExternalService)
}
