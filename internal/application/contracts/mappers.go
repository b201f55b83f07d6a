package contracts

import (
	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:                    c.ID,
		ClientID:              c.ClientID,
		ProductID:             c.ProductID,
		SoftwareVersion:       c.SoftwareVersion,
		StartDate:             c.StartDate,
		EndDate:               c.EndDate,
		SupportExtensionYears: c.SupportExtensionYears,
		Price:                 c.Price,
		IsSigned:              c.IsSigned,
		IsActive:              c.IsActive,
		CreatedAt:             c.CreatedAt,
	}
}

func toPaymentResponse(p *entity.ContractPayment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:          p.ID,
		ContractID:  p.ContractID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		IsRefunded:  p.IsRefunded,
	}
}
