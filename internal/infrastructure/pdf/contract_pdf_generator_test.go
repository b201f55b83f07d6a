package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0,00 PLN", formatMoney(decimal.Zero))
	assert.Equal(t, "999,90 PLN", formatMoney(decimal.RequireFromString("999.9")))
	assert.Equal(t, "12 345,50 PLN", formatMoney(decimal.RequireFromString("12345.5")))
	assert.Equal(t, "1 000 000,00 PLN", formatMoney(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-1 500,00 PLN", formatMoney(decimal.NewFromInt(-1500)))
}

func TestPaidTotal_IgnoraReembolsados(t *testing.T) {
	payments := []*entity.ContractPayment{
		{Amount: decimal.NewFromInt(4000)},
		{Amount: decimal.NewFromInt(3000), IsRefunded: true},
		{Amount: decimal.NewFromInt(1000)},
	}
	assert.True(t, paidTotal(payments).Equal(decimal.NewFromInt(5000)))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "FIRMADO", statusLabel(&entity.Contract{IsSigned: true, IsActive: true}))
	assert.Equal(t, "PENDIENTE DE PAGO", statusLabel(&entity.Contract{IsActive: true}))
	assert.Equal(t, "INACTIVO", statusLabel(&entity.Contract{}))
}

func TestGenerateContractPDF_Bytes(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	contract := &entity.Contract{
		ID:              "6f1c2a9e-0000-4000-8000-000000000001",
		SoftwareVersion: "2.1",
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 10),
		Price:           decimal.NewFromInt(10000),
		IsActive:        true,
	}
	client := &entity.Client{
		Kind:       entity.ClientKindIndividual,
		Email:      "jan@example.pl",
		Individual: &entity.IndividualData{FirstName: "Jan", LastName: "Kowalski", PESEL: "90010112345"},
	}
	product := &entity.SoftwareProduct{Name: "Ledger", Version: "2.1", Category: "Finance"}
	payments := []*entity.ContractPayment{
		{Amount: decimal.NewFromInt(4000), PaymentDate: start.AddDate(0, 0, 1)},
	}

	out, err := NewMarotoPDFGenerator().GenerateContractPDF(context.Background(), contract, client, product, payments)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
