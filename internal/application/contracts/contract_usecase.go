package contracts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/pricing"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

// ContractUseCase crea, consulta y da de baja contratos.
// Las escrituras corren dentro de ports.ContractTxRunner con bloqueo de fila (SELECT FOR UPDATE).
type ContractUseCase struct {
	txRunner     ports.ContractTxRunner
	clientRepo   repository.ClientRepository
	softwareRepo repository.SoftwareRepository
	discountRepo repository.DiscountRepository
	contractRepo repository.ContractRepository
	paymentRepo  repository.PaymentRepository
	pdfGenerator ports.ContractPDFGenerator
}

// NewContractUseCase construye el caso de uso. pdfGenerator puede ser nil si no se expone el PDF.
func NewContractUseCase(
	txRunner ports.ContractTxRunner,
	clientRepo repository.ClientRepository,
	softwareRepo repository.SoftwareRepository,
	discountRepo repository.DiscountRepository,
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
	pdfGenerator ports.ContractPDFGenerator,
) *ContractUseCase {
	return &ContractUseCase{
		txRunner:     txRunner,
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		discountRepo: discountRepo,
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		pdfGenerator: pdfGenerator,
	}
}

// Create valida términos, cliente y producto; calcula el precio y persiste el contrato
// (IsSigned=false, IsActive=true). La verificación de contrato activo duplicado y el INSERT
// van en la misma transacción; el índice único parcial cubre la carrera restante.
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := pricing.ValidateTerms(in.StartDate, in.EndDate, in.SupportExtensionYears); err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.IsDeleted {
		return nil, domain.ErrClientNotFound
	}
	product, err := uc.softwareRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Version != in.SoftwareVersion {
		return nil, domain.ErrProductNotFound
	}
	discounts, err := uc.discountRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var contract *entity.Contract
	err = uc.txRunner.RunContracts(ctx, func(
		contractRepo repository.ContractRepository,
		_ repository.PaymentRepository,
	) error {
		active, err := contractRepo.HasActive(ctx, client.ID, product.ID)
		if err != nil {
			return err
		}
		if active {
			return domain.ErrDuplicateActiveContract
		}
		loyal, err := contractRepo.HasSigned(ctx, client.ID)
		if err != nil {
			return err
		}
		quote := pricing.Calculate(in.SupportExtensionYears, discounts, loyal, now)
		contract = &entity.Contract{
			ID:                    uuid.New().String(),
			ClientID:              client.ID,
			ProductID:             product.ID,
			SoftwareVersion:       product.Version,
			StartDate:             in.StartDate,
			EndDate:               in.EndDate,
			Price:                 quote.Price,
			SupportExtensionYears: in.SupportExtensionYears,
			IsSigned:              false,
			IsActive:              true,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		return contractRepo.Create(ctx, contract)
	})
	if err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// GetByID devuelve el contrato o domain.ErrContractNotFound.
func (uc *ContractUseCase) GetByID(ctx context.Context, id string) (*dto.ContractResponse, error) {
	contract, err := uc.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrContractNotFound
	}
	return toContractResponse(contract), nil
}

// ListByClient lista los contratos de un cliente (incluye inactivos).
func (uc *ContractUseCase) ListByClient(ctx context.Context, clientID string) ([]*dto.ContractResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	list, err := uc.contractRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContractResponse(c))
	}
	return out, nil
}

// Delete desactiva un contrato sin firmar. Pagos y precio se conservan.
func (uc *ContractUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunContracts(ctx, func(
		contractRepo repository.ContractRepository,
		_ repository.PaymentRepository,
	) error {
		contract, err := contractRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return domain.ErrContractNotFound
		}
		if contract.IsSigned {
			return domain.ErrCannotDeleteSigned
		}
		return contractRepo.SetActive(ctx, contract.ID, false, time.Now())
	})
}

// PDF genera el resumen del contrato: cliente, producto, precio, pagos y saldo.
func (uc *ContractUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	if uc.pdfGenerator == nil {
		return nil, domain.ErrExternalService
	}
	contract, err := uc.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrContractNotFound
	}
	client, err := uc.clientRepo.GetByID(ctx, contract.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	product, err := uc.softwareRepo.GetByID(ctx, contract.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	payments, err := uc.paymentRepo.ListByContract(ctx, contract.ID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateContractPDF(ctx, contract, client, product, payments)
}
