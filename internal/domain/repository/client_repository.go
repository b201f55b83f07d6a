package repository

import (
	"context"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (personas y empresas).
// GetByID devuelve (nil, nil) si no existe; incluye clientes dados de baja.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByPESEL(ctx context.Context, pesel string) (*entity.Client, error)
	GetByKRS(ctx context.Context, krs string) (*entity.Client, error)
	ListActive(ctx context.Context, kind entity.ClientKind) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
}
