package memory

import (
	"context"

	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var _ ports.ContractTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks en exclusión mutua sobre el store.
// Si fn falla se restauran contratos y pagos al estado previo (Rollback).
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunContracts serializa la transacción completa con txMu.
func (r *TxRunner) RunContracts(ctx context.Context, fn func(
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	contracts, payments := r.s.snapshot()
	if err := fn(&ContractRepo{s: r.s}, &PaymentRepo{s: r.s}); err != nil {
		r.s.restore(contracts, payments)
		return err
	}
	return nil
}

func (s *Store) snapshot() (map[string]*entity.Contract, map[string]*entity.ContractPayment) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contracts := make(map[string]*entity.Contract, len(s.contracts))
	for id, c := range s.contracts {
		contracts[id] = cloneContract(c)
	}
	payments := make(map[string]*entity.ContractPayment, len(s.payments))
	for id, p := range s.payments {
		payments[id] = clonePayment(p)
	}
	return contracts, payments
}

func (s *Store) restore(contracts map[string]*entity.Contract, payments map[string]*entity.ContractPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = contracts
	s.payments = payments
}
