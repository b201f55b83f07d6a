package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var _ ports.ContractTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunContracts inicia una transacción, ejecuta fn con repos de contratos y pagos atados a la tx
// y hace Commit o Rollback. Los GetByIDForUpdate/ListExpiredForUpdate dentro de fn bloquean filas
// hasta el Commit, lo que serializa pagos, bajas y el barrido sobre el mismo contrato.
func (r *TxRunner) RunContracts(ctx context.Context, fn func(
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contractRepo := NewContractRepository(tx)
	paymentRepo := NewPaymentRepository(tx)

	if err := fn(contractRepo, paymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
