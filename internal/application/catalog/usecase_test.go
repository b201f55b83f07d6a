package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/revenue-api/internal/application/catalog"
	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/infrastructure/memory"
)

func newCatalog() *catalog.CatalogUseCase {
	repos := memory.NewStore().Repositories()
	return catalog.NewCatalogUseCase(repos.Software, repos.Discounts)
}

var productReq = dto.CreateSoftwareRequest{
	Name:        "Ledger",
	Description: "Contabilidad general",
	Version:     "2.1",
	Category:    "finance",
}

func TestCreateProduct_DuplicadoExacto(t *testing.T) {
	uc := newCatalog()
	_, err := uc.CreateProduct(context.Background(), productReq)
	require.NoError(t, err)

	_, err = uc.CreateProduct(context.Background(), productReq)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Otra versión no es duplicado.
	other := productReq
	other.Version = "2.2"
	_, err = uc.CreateProduct(context.Background(), other)
	assert.NoError(t, err)

	list, err := uc.ListProducts(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGetProduct_Inexistente(t *testing.T) {
	_, err := newCatalog().GetProduct(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateDiscount_ValidaYDetectaDuplicado(t *testing.T) {
	uc := newCatalog()
	product, err := uc.CreateProduct(context.Background(), productReq)
	require.NoError(t, err)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateDiscountRequest{
		ProductID:  product.ID,
		Name:       "Black Friday",
		Percentage: decimal.NewFromInt(15),
		Start:      start,
		End:        start.AddDate(0, 1, 0),
	}

	created, err := uc.CreateDiscount(context.Background(), req)
	require.NoError(t, err)
	_, err = uc.CreateDiscount(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := uc.GetDiscount(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(got.Percentage))

	list, err := uc.ListDiscounts(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateDiscount_PorcentajeInvalido(t *testing.T) {
	uc := newCatalog()
	product, err := uc.CreateProduct(context.Background(), productReq)
	require.NoError(t, err)

	for _, pct := range []string{"0", "-5", "100.01"} {
		_, err := uc.CreateDiscount(context.Background(), dto.CreateDiscountRequest{
			ProductID:  product.ID,
			Name:       "X",
			Percentage: decimal.RequireFromString(pct),
			Start:      time.Now(),
			End:        time.Now().Add(time.Hour),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "porcentaje=%s", pct)
	}
}

func TestCreateDiscount_ProductoInexistente(t *testing.T) {
	_, err := newCatalog().CreateDiscount(context.Background(), dto.CreateDiscountRequest{
		ProductID:  uuid.New().String(),
		Name:       "X",
		Percentage: decimal.NewFromInt(10),
		Start:      time.Now(),
		End:        time.Now().Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
