package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var (
	_ repository.ContractRepository = (*ContractRepo)(nil)
	_ repository.PaymentRepository  = (*PaymentRepo)(nil)
)

// ContractRepo implementación en memoria de ContractRepository.
// Los métodos *ForUpdate no bloquean por sí mismos: la exclusión la da TxRunner.
type ContractRepo struct {
	s *Store
}

// Create rechaza un segundo contrato activo para el mismo (cliente, producto),
// igual que el índice único parcial de PostgreSQL.
func (r *ContractRepo) Create(_ context.Context, contract *entity.Contract) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if contract.IsActive {
		for _, c := range r.s.contracts {
			if c.IsActive && c.ClientID == contract.ClientID && c.ProductID == contract.ProductID {
				return domain.ErrDuplicateActiveContract
			}
		}
	}
	r.s.contracts[contract.ID] = cloneContract(contract)
	return nil
}

func (r *ContractRepo) GetByID(_ context.Context, id string) (*entity.Contract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contracts[id]
	if !ok {
		return nil, nil
	}
	return cloneContract(c), nil
}

func (r *ContractRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Contract, error) {
	return r.GetByID(ctx, id)
}

func (r *ContractRepo) ListByClient(_ context.Context, clientID string) ([]*entity.Contract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Contract
	for _, c := range r.s.contracts {
		if c.ClientID == clientID {
			list = append(list, cloneContract(c))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *ContractRepo) HasActive(_ context.Context, clientID, productID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.contracts {
		if c.IsActive && c.ClientID == clientID && c.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ContractRepo) HasSigned(_ context.Context, clientID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.contracts {
		if c.IsSigned && c.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ContractRepo) SetSigned(_ context.Context, id string, signed bool, now time.Time) error {
	return r.mutate(id, func(c *entity.Contract) {
		c.IsSigned = signed
		c.UpdatedAt = now
	})
}

func (r *ContractRepo) SetActive(_ context.Context, id string, active bool, now time.Time) error {
	return r.mutate(id, func(c *entity.Contract) {
		c.IsActive = active
		c.UpdatedAt = now
	})
}

func (r *ContractRepo) ListExpiredForUpdate(_ context.Context, now time.Time) ([]*entity.Contract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Contract
	for _, c := range r.s.contracts {
		if c.Expired(now) {
			list = append(list, cloneContract(c))
		}
	}
	return list, nil
}

func (r *ContractRepo) DeactivateMany(_ context.Context, ids []string, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		if c, ok := r.s.contracts[id]; ok {
			c.IsActive = false
			c.UpdatedAt = now
		}
	}
	return nil
}

func (r *ContractRepo) SumRevenue(_ context.Context, filter repository.RevenueFilter) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, c := range r.s.contracts {
		if filter.ProductID != "" && c.ProductID != filter.ProductID {
			continue
		}
		if c.IsSigned || (filter.IncludeActive && c.IsActive) {
			sum = sum.Add(c.Price)
		}
	}
	return sum, nil
}

func (r *ContractRepo) mutate(id string, fn func(c *entity.Contract)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contracts[id]
	if !ok {
		return domain.ErrContractNotFound
	}
	fn(c)
	return nil
}

// PaymentRepo implementación en memoria de PaymentRepository.
type PaymentRepo struct {
	s *Store
}

func (r *PaymentRepo) Create(_ context.Context, payment *entity.ContractPayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contracts[payment.ContractID]; !ok {
		return domain.ErrContractNotFound
	}
	r.s.payments[payment.ID] = clonePayment(payment)
	return nil
}

func (r *PaymentRepo) GetByID(_ context.Context, id string) (*entity.ContractPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	return clonePayment(p), nil
}

func (r *PaymentRepo) ListByContract(_ context.Context, contractID string) ([]*entity.ContractPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ContractPayment
	for _, p := range r.s.payments {
		if p.ContractID == contractID {
			list = append(list, clonePayment(p))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PaymentDate.Equal(list[j].PaymentDate) {
			return list[i].PaymentDate.Before(list[j].PaymentDate)
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (r *PaymentRepo) SumByContract(_ context.Context, contractID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, p := range r.s.payments {
		if p.ContractID == contractID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r *PaymentRepo) MarkRefundedByContracts(_ context.Context, contractIDs []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make(map[string]struct{}, len(contractIDs))
	for _, id := range contractIDs {
		ids[id] = struct{}{}
	}
	var n int64
	for _, p := range r.s.payments {
		if _, ok := ids[p.ContractID]; ok {
			p.IsRefunded = true
			n++
		}
	}
	return n, nil
}
