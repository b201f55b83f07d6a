package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var (
	_ repository.SoftwareRepository = (*SoftwareRepo)(nil)
	_ repository.DiscountRepository = (*DiscountRepo)(nil)
)

// SoftwareRepo implementación en memoria de SoftwareRepository.
type SoftwareRepo struct {
	s *Store
}

func (r *SoftwareRepo) Create(_ context.Context, product *entity.SoftwareProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	p := *product
	r.s.products[product.ID] = &p
	return nil
}

func (r *SoftwareRepo) GetByID(_ context.Context, id string) (*entity.SoftwareProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *SoftwareRepo) FindExact(_ context.Context, name, description, version, category string) (*entity.SoftwareProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Name == name && p.Description == description && p.Version == version && p.Category == category {
			out := *p
			return &out, nil
		}
	}
	return nil, nil
}

// List ordena por nombre y versión, con paginación.
func (r *SoftwareRepo) List(_ context.Context, limit, offset int) ([]*entity.SoftwareProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.SoftwareProduct, 0, len(r.s.products))
	for _, p := range r.s.products {
		out := *p
		list = append(list, &out)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].Version < list[j].Version
	})
	return paginate(list, limit, offset), nil
}

// DiscountRepo implementación en memoria de DiscountRepository.
type DiscountRepo struct {
	s *Store
}

func (r *DiscountRepo) Create(_ context.Context, discount *entity.Discount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.discounts[discount.ID]; ok {
		return domain.ErrDuplicate
	}
	d := *discount
	r.s.discounts[discount.ID] = &d
	return nil
}

func (r *DiscountRepo) GetByID(_ context.Context, id string) (*entity.Discount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.discounts[id]
	if !ok {
		return nil, nil
	}
	out := *d
	return &out, nil
}

func (r *DiscountRepo) FindExact(_ context.Context, want *entity.Discount) (*entity.Discount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, d := range r.s.discounts {
		if d.ProductID == want.ProductID && d.Name == want.Name && d.Percentage.Equal(want.Percentage) &&
			d.Start.Equal(want.Start) && d.End.Equal(want.End) {
			out := *d
			return &out, nil
		}
	}
	return nil, nil
}

func (r *DiscountRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Discount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Discount
	for _, d := range r.s.discounts {
		if d.ProductID == productID {
			out := *d
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Start.Before(list[j].Start) })
	return list, nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
