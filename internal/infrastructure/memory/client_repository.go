package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación en memoria de ClientRepository.
type ClientRepo struct {
	s *Store
}

// Create guarda el cliente. PESEL y KRS son únicos por tipo.
func (r *ClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.findByTaxIDLocked(client.Kind, client.TaxID()) != nil {
		return domain.ErrDuplicate
	}
	r.s.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return cloneClient(c), nil
}

func (r *ClientRepo) GetByPESEL(_ context.Context, pesel string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c := r.findByTaxIDLocked(entity.ClientKindIndividual, pesel); c != nil {
		return cloneClient(c), nil
	}
	return nil, nil
}

func (r *ClientRepo) GetByKRS(_ context.Context, krs string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c := r.findByTaxIDLocked(entity.ClientKindCompany, krs); c != nil {
		return cloneClient(c), nil
	}
	return nil, nil
}

// ListActive lista los clientes no eliminados del tipo indicado, por fecha de alta.
func (r *ClientRepo) ListActive(_ context.Context, kind entity.ClientKind) ([]*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Client
	for _, c := range r.s.clients {
		if c.Kind == kind && !c.IsDeleted {
			list = append(list, cloneClient(c))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *ClientRepo) Update(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.s.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *ClientRepo) findByTaxIDLocked(kind entity.ClientKind, taxID string) *entity.Client {
	if taxID == "" {
		return nil
	}
	for _, c := range r.s.clients {
		if c.Kind == kind && c.TaxID() == taxID {
			return c
		}
	}
	return nil
}
