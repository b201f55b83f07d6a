package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// RevenueFilter criterio de agregación de ingresos.
// IncludeActive=false suma solo contratos firmados; true suma firmados o activos (pronóstico).
type RevenueFilter struct {
	ProductID     string // vacío = todos los productos
	IncludeActive bool
}

// ContractRepository define el puerto de persistencia para Contract.
// Los métodos *ForUpdate bloquean la(s) fila(s) hasta el fin de la transacción.
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Contract, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Contract, error)
	HasActive(ctx context.Context, clientID, productID string) (bool, error)
	HasSigned(ctx context.Context, clientID string) (bool, error)
	SetSigned(ctx context.Context, id string, signed bool, now time.Time) error
	SetActive(ctx context.Context, id string, active bool, now time.Time) error
	// ListExpiredForUpdate contratos activos, sin firmar y con end_date < now, bloqueados.
	ListExpiredForUpdate(ctx context.Context, now time.Time) ([]*entity.Contract, error)
	DeactivateMany(ctx context.Context, ids []string, now time.Time) error
	SumRevenue(ctx context.Context, filter RevenueFilter) (decimal.Decimal, error)
}
