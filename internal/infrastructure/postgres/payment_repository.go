package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.ContractPayment) error {
	query := `
		INSERT INTO contract_payments (id, contract_id, amount, payment_date, is_refunded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, p.ID, p.ContractID, p.Amount, p.PaymentDate, p.IsRefunded, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.ContractPayment, error) {
	query := `
		SELECT id, contract_id, amount, payment_date, is_refunded, created_at
		FROM contract_payments WHERE id = $1`
	var p entity.ContractPayment
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.ContractID, &p.Amount, &p.PaymentDate, &p.IsRefunded, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

func (r *PaymentRepo) ListByContract(ctx context.Context, contractID string) ([]*entity.ContractPayment, error) {
	query := `
		SELECT id, contract_id, amount, payment_date, is_refunded, created_at
		FROM contract_payments WHERE contract_id = $1 ORDER BY payment_date, created_at`
	rows, err := r.q.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContractPayment
	for rows.Next() {
		var p entity.ContractPayment
		if err := rows.Scan(&p.ID, &p.ContractID, &p.Amount, &p.PaymentDate, &p.IsRefunded, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PaymentRepo) SumByContract(ctx context.Context, contractID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM contract_payments WHERE contract_id = $1`, contractID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return sum, nil
}

func (r *PaymentRepo) MarkRefundedByContracts(ctx context.Context, contractIDs []string) (int64, error) {
	if len(contractIDs) == 0 {
		return 0, nil
	}
	tag, err := r.q.Exec(ctx,
		`UPDATE contract_payments SET is_refunded = TRUE WHERE contract_id = ANY($1::uuid[])`, contractIDs)
	if err != nil {
		return 0, fmt.Errorf("refund payments: %w", err)
	}
	return tag.RowsAffected(), nil
}
