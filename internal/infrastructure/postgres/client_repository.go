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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre la tabla única clients.
// Las columnas propias de cada tipo son nulas en el otro.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, kind, address, email, phone, is_deleted,
	first_name, last_name, pesel, company_name, krs, created_at, updated_at`

// Create persiste un cliente. PESEL/KRS repetidos -> domain.ErrDuplicate (índices únicos parciales).
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	firstName, lastName, pesel, companyName, krs := variantColumns(c)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, string(c.Kind), c.Address, c.Email, c.Phone, c.IsDeleted,
		firstName, lastName, pesel, companyName, krs, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

func (r *ClientRepo) GetByPESEL(ctx context.Context, pesel string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE pesel = $1`, pesel)
}

func (r *ClientRepo) GetByKRS(ctx context.Context, krs string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE krs = $1`, krs)
}

// ListActive lista clientes no eliminados del tipo indicado.
func (r *ClientRepo) ListActive(ctx context.Context, kind entity.ClientKind) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE kind = $1 AND NOT is_deleted ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update reescribe contacto, nombres y baja lógica. PESEL/KRS no se modifican.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	firstName, lastName, _, companyName, _ := variantColumns(c)
	query := `
		UPDATE clients SET address = $2, email = $3, phone = $4, is_deleted = $5,
			first_name = $6, last_name = $7, company_name = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Address, c.Email, c.Phone, c.IsDeleted, firstName, lastName, companyName, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepo) getOne(ctx context.Context, query string, arg string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var (
		c                                            entity.Client
		kind                                         string
		firstName, lastName, pesel, companyName, krs *string
	)
	err := row.Scan(&c.ID, &kind, &c.Address, &c.Email, &c.Phone, &c.IsDeleted,
		&firstName, &lastName, &pesel, &companyName, &krs, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Kind = entity.ClientKind(kind)
	switch c.Kind {
	case entity.ClientKindIndividual:
		c.Individual = &entity.IndividualData{FirstName: deref(firstName), LastName: deref(lastName), PESEL: deref(pesel)}
	case entity.ClientKindCompany:
		c.Company = &entity.CompanyData{CompanyName: deref(companyName), KRS: deref(krs)}
	}
	return &c, nil
}

func variantColumns(c *entity.Client) (firstName, lastName, pesel, companyName, krs *string) {
	if c.Individual != nil {
		firstName = nullString(c.Individual.FirstName)
		lastName = nullString(c.Individual.LastName)
		pesel = nullString(c.Individual.PESEL)
	}
	if c.Company != nil {
		companyName = nullString(c.Company.CompanyName)
		krs = nullString(c.Company.KRS)
	}
	return
}
