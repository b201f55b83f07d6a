package ports

import (
	"context"

	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

// ContractTxRunner ejecuta fn dentro de una transacción con repos de contratos y pagos
// atados a ella. Si fn retorna error se hace Rollback; si no, Commit.
type ContractTxRunner interface {
	RunContracts(ctx context.Context, fn func(
		contractRepo repository.ContractRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
