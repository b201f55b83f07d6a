package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// uxContractsActive índice único parcial (client_id, product_id) WHERE is_active.
const uxContractsActive = "ux_contracts_active"

// ContractRepo implementación de ContractRepository (usable con pool o tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, client_id, product_id, software_version, start_date, end_date,
	price, support_extension_years, is_signed, is_active, created_at, updated_at`

// Create persiste el contrato. Si otro contrato activo del mismo (cliente, producto)
// se confirmó en paralelo, el índice parcial lo rechaza y se devuelve ErrDuplicateActiveContract.
func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.ClientID, c.ProductID, c.SoftwareVersion, c.StartDate, c.EndDate,
		c.Price, c.SupportExtensionYears, c.IsSigned, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if constraintName(err) == uxContractsActive {
				return domain.ErrDuplicateActiveContract
			}
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	return r.getOne(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene el contrato y bloquea la fila (SELECT FOR UPDATE). Solo tiene efecto dentro de una tx.
func (r *ContractRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Contract, error) {
	return r.getOne(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1 FOR UPDATE`, id)
}

func (r *ContractRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+` FROM contracts WHERE client_id = $1 ORDER BY created_at`, clientID)
}

func (r *ContractRepo) HasActive(ctx context.Context, clientID, productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM contracts WHERE client_id = $1 AND product_id = $2 AND is_active)`,
		clientID, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active contract: %w", err)
	}
	return exists, nil
}

func (r *ContractRepo) HasSigned(ctx context.Context, clientID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM contracts WHERE client_id = $1 AND is_signed)`, clientID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check signed contract: %w", err)
	}
	return exists, nil
}

func (r *ContractRepo) SetSigned(ctx context.Context, id string, signed bool, now time.Time) error {
	return r.exec(ctx, `UPDATE contracts SET is_signed = $2, updated_at = $3 WHERE id = $1`, id, signed, now)
}

func (r *ContractRepo) SetActive(ctx context.Context, id string, active bool, now time.Time) error {
	return r.exec(ctx, `UPDATE contracts SET is_active = $2, updated_at = $3 WHERE id = $1`, id, active, now)
}

// ListExpiredForUpdate bloquea y devuelve los contratos activos, sin firmar y vencidos.
func (r *ContractRepo) ListExpiredForUpdate(ctx context.Context, now time.Time) ([]*entity.Contract, error) {
	query := `
		SELECT ` + contractColumns + ` FROM contracts
		WHERE is_active AND NOT is_signed AND end_date < $1
		ORDER BY id
		FOR UPDATE`
	return r.list(ctx, query, now)
}

func (r *ContractRepo) DeactivateMany(ctx context.Context, ids []string, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx,
		`UPDATE contracts SET is_active = FALSE, updated_at = $2 WHERE id = ANY($1::uuid[])`, ids, now)
	if err != nil {
		return fmt.Errorf("deactivate contracts: %w", err)
	}
	return nil
}

// SumRevenue suma price de contratos firmados (o firmados/activos si IncludeActive).
func (r *ContractRepo) SumRevenue(ctx context.Context, filter repository.RevenueFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(price), 0) FROM contracts
		WHERE (is_signed OR ($1 AND is_active))`
	args := []any{filter.IncludeActive}
	if filter.ProductID != "" {
		query += ` AND product_id = $2`
		args = append(args, filter.ProductID)
	}
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	return sum, nil
}

func (r *ContractRepo) exec(ctx context.Context, query string, id string, args ...any) error {
	tag, err := r.q.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

func (r *ContractRepo) getOne(ctx context.Context, query string, id string) (*entity.Contract, error) {
	c, err := scanContract(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

func (r *ContractRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Contract, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(&c.ID, &c.ClientID, &c.ProductID, &c.SoftwareVersion, &c.StartDate, &c.EndDate,
		&c.Price, &c.SupportExtensionYears, &c.IsSigned, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
