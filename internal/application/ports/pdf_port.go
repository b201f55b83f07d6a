package ports

import (
	"context"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// ContractPDFGenerator genera el resumen imprimible de un contrato.
type ContractPDFGenerator interface {
	GenerateContractPDF(
		ctx context.Context,
		contract *entity.Contract,
		client *entity.Client,
		product *entity.SoftwareProduct,
		payments []*entity.ContractPayment,
	) ([]byte, error)
}
