package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para ContractPayment.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.ContractPayment) error
	GetByID(ctx context.Context, id string) (*entity.ContractPayment, error)
	ListByContract(ctx context.Context, contractID string) ([]*entity.ContractPayment, error)
	SumByContract(ctx context.Context, contractID string) (decimal.Decimal, error)
	// MarkRefundedByContracts marca como reembolsados todos los pagos de los contratos dados.
	MarkRefundedByContracts(ctx context.Context, contractIDs []string) (int64, error)
}
