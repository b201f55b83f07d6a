package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var (
	_ repository.SoftwareRepository = (*SoftwareRepo)(nil)
	_ repository.DiscountRepository = (*DiscountRepo)(nil)
)

// SoftwareRepo implementación de SoftwareRepository (usable con pool o tx).
type SoftwareRepo struct {
	q Querier
}

// NewSoftwareRepository construye el adaptador.
func NewSoftwareRepository(q Querier) *SoftwareRepo {
	return &SoftwareRepo{q: q}
}

func (r *SoftwareRepo) Create(ctx context.Context, p *entity.SoftwareProduct) error {
	query := `
		INSERT INTO software_products (id, name, description, version, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Description, p.Version, p.Category, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert software product: %w", err)
	}
	return nil
}

func (r *SoftwareRepo) GetByID(ctx context.Context, id string) (*entity.SoftwareProduct, error) {
	query := `
		SELECT id, name, description, version, category, created_at, updated_at
		FROM software_products WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *SoftwareRepo) FindExact(ctx context.Context, name, description, version, category string) (*entity.SoftwareProduct, error) {
	query := `
		SELECT id, name, description, version, category, created_at, updated_at
		FROM software_products
		WHERE name = $1 AND description = $2 AND version = $3 AND category = $4`
	return r.getOne(ctx, query, name, description, version, category)
}

func (r *SoftwareRepo) List(ctx context.Context, limit, offset int) ([]*entity.SoftwareProduct, error) {
	query := `
		SELECT id, name, description, version, category, created_at, updated_at
		FROM software_products ORDER BY name, version LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list software products: %w", err)
	}
	defer rows.Close()
	var list []*entity.SoftwareProduct
	for rows.Next() {
		var p entity.SoftwareProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Version, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan software product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *SoftwareRepo) getOne(ctx context.Context, query string, args ...any) (*entity.SoftwareProduct, error) {
	var p entity.SoftwareProduct
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Description, &p.Version, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get software product: %w", err)
	}
	return &p, nil
}

// DiscountRepo implementación de DiscountRepository.
type DiscountRepo struct {
	q Querier
}

// NewDiscountRepository construye el adaptador.
func NewDiscountRepository(q Querier) *DiscountRepo {
	return &DiscountRepo{q: q}
}

func (r *DiscountRepo) Create(ctx context.Context, d *entity.Discount) error {
	query := `
		INSERT INTO discounts (id, product_id, name, percentage, start_at, end_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, d.ID, d.ProductID, d.Name, d.Percentage, d.Start, d.End, d.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert discount: %w", err)
	}
	return nil
}

func (r *DiscountRepo) GetByID(ctx context.Context, id string) (*entity.Discount, error) {
	query := `
		SELECT id, product_id, name, percentage, start_at, end_at, created_at
		FROM discounts WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *DiscountRepo) FindExact(ctx context.Context, d *entity.Discount) (*entity.Discount, error) {
	query := `
		SELECT id, product_id, name, percentage, start_at, end_at, created_at
		FROM discounts
		WHERE product_id = $1 AND name = $2 AND percentage = $3 AND start_at = $4 AND end_at = $5`
	return r.getOne(ctx, query, d.ProductID, d.Name, d.Percentage, d.Start, d.End)
}

func (r *DiscountRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Discount, error) {
	query := `
		SELECT id, product_id, name, percentage, start_at, end_at, created_at
		FROM discounts WHERE product_id = $1 ORDER BY start_at`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list discounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Discount
	for rows.Next() {
		var d entity.Discount
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Name, &d.Percentage, &d.Start, &d.End, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan discount: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DiscountRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Discount, error) {
	var d entity.Discount
	err := r.q.QueryRow(ctx, query, args...).Scan(&d.ID, &d.ProductID, &d.Name, &d.Percentage, &d.Start, &d.End, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount: %w", err)
	}
	return &d, nil
}
