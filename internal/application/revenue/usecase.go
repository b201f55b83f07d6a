package revenue

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

// BaseCurrency moneda en la que se guardan los precios.
const BaseCurrency = "PLN"

// RevenueUseCase calcula ingresos actuales (firmados) y pronosticados (firmados o activos).
type RevenueUseCase struct {
	contractRepo repository.ContractRepository
	rates        ports.ExchangeRateProvider
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(contractRepo repository.ContractRepository, rates ports.ExchangeRateProvider) *RevenueUseCase {
	return &RevenueUseCase{contractRepo: contractRepo, rates: rates}
}

// Current suma el precio de los contratos firmados.
func (uc *RevenueUseCase) Current(ctx context.Context, in dto.RevenueRequest) (*dto.RevenueResponse, error) {
	return uc.calculate(ctx, in, false)
}

// Forecast suma el precio de los contratos firmados o aún activos.
func (uc *RevenueUseCase) Forecast(ctx context.Context, in dto.RevenueRequest) (*dto.RevenueResponse, error) {
	return uc.calculate(ctx, in, true)
}

func (uc *RevenueUseCase) calculate(ctx context.Context, in dto.RevenueRequest, includeActive bool) (*dto.RevenueResponse, error) {
	amount, err := uc.contractRepo.SumRevenue(ctx, repository.RevenueFilter{
		ProductID:     in.ProductID,
		IncludeActive: includeActive,
	})
	if err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" || currency == BaseCurrency {
		return &dto.RevenueResponse{Amount: amount, Currency: BaseCurrency, ExchangeRate: decimal.NewFromInt(1)}, nil
	}
	rate, err := uc.rates.Rate(ctx, BaseCurrency, currency)
	if err != nil {
		return nil, err
	}
	return &dto.RevenueResponse{Amount: amount.Mul(rate), Currency: currency, ExchangeRate: rate}, nil
}
