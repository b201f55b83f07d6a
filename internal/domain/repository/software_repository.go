package repository

import (
	"context"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// SoftwareRepository define el puerto de persistencia para el catálogo de software.
type SoftwareRepository interface {
	Create(ctx context.Context, product *entity.SoftwareProduct) error
	GetByID(ctx context.Context, id string) (*entity.SoftwareProduct, error)
	// FindExact busca un producto con los cuatro campos idénticos (detección de duplicados).
	FindExact(ctx context.Context, name, description, version, category string) (*entity.SoftwareProduct, error)
	List(ctx context.Context, limit, offset int) ([]*entity.SoftwareProduct, error)
}

// DiscountRepository define el puerto de persistencia para descuentos de producto.
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	GetByID(ctx context.Context, id string) (*entity.Discount, error)
	FindExact(ctx context.Context, d *entity.Discount) (*entity.Discount, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Discount, error)
}
