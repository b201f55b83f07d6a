package contracts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

// PaymentUseCase registra y consulta pagos de contratos.
type PaymentUseCase struct {
	txRunner     ports.ContractTxRunner
	contractRepo repository.ContractRepository
	paymentRepo  repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner ports.ContractTxRunner,
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, contractRepo: contractRepo, paymentRepo: paymentRepo}
}

// Add registra un pago. Todo ocurre con la fila del contrato bloqueada:
// vigencia, estado activo y tope de precio se verifican antes del INSERT,
// y si la suma iguala exactamente el precio el contrato queda firmado.
func (uc *PaymentUseCase) Add(ctx context.Context, in dto.AddPaymentRequest) (*dto.PaymentResponse, error) {
	// NUMERIC(18,2): un monto con más decimales no se puede guardar tal cual.
	if !in.Amount.IsPositive() || !in.Amount.Equal(in.Amount.Truncate(2)) {
		return nil, domain.ErrInvalidAmount
	}
	now := time.Now()
	var payment *entity.ContractPayment
	err := uc.txRunner.RunContracts(ctx, func(
		contractRepo repository.ContractRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		contract, err := contractRepo.GetByIDForUpdate(ctx, in.ContractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return domain.ErrContractNotFound
		}
		if !contract.Covers(in.PaymentDate) {
			return domain.ErrPaymentOutOfWindow
		}
		if !contract.IsActive {
			return domain.ErrContractInactive
		}
		paid, err := paymentRepo.SumByContract(ctx, contract.ID)
		if err != nil {
			return err
		}
		if paid.Add(in.Amount).GreaterThan(contract.Price) {
			return domain.ErrOverpayRejected
		}

		payment = &entity.ContractPayment{
			ID:          uuid.New().String(),
			ContractID:  contract.ID,
			Amount:      in.Amount,
			PaymentDate: in.PaymentDate,
			CreatedAt:   now,
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		total, err := paymentRepo.SumByContract(ctx, contract.ID)
		if err != nil {
			return err
		}
		if total.Equal(contract.Price) {
			return contractRepo.SetSigned(ctx, contract.ID, true, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID devuelve el pago o domain.ErrPaymentNotFound.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	return toPaymentResponse(payment), nil
}

// ListByContract lista los pagos de un contrato en orden de fecha.
func (uc *PaymentUseCase) ListByContract(ctx context.Context, contractID string) ([]*dto.PaymentResponse, error) {
	contract, err := uc.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrContractNotFound
	}
	list, err := uc.paymentRepo.ListByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}
