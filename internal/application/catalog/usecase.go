package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var maxPercentage = decimal.NewFromInt(100)

// CatalogUseCase casos de uso del catálogo de software y sus descuentos.
type CatalogUseCase struct {
	productRepo  repository.SoftwareRepository
	discountRepo repository.DiscountRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.SoftwareRepository, discountRepo repository.DiscountRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, discountRepo: discountRepo}
}

// CreateProduct crea un producto. Un producto idéntico en los cuatro campos es duplicado.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateSoftwareRequest) (*dto.SoftwareResponse, error) {
	existing, err := uc.productRepo.FindExact(ctx, in.Name, in.Description, in.Version, in.Category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.SoftwareProduct{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Version:     in.Version,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toSoftwareResponse(product), nil
}

// GetProduct devuelve el producto o domain.ErrProductNotFound.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*dto.SoftwareResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toSoftwareResponse(product), nil
}

// ListProducts lista el catálogo paginado.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, page dto.PageRequest) ([]*dto.SoftwareResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SoftwareResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toSoftwareResponse(p))
	}
	return out, nil
}

// CreateDiscount crea un descuento sobre un producto existente.
// Percentage debe estar en (0, 100] y Start <= End.
func (uc *CatalogUseCase) CreateDiscount(ctx context.Context, in dto.CreateDiscountRequest) (*dto.DiscountResponse, error) {
	if !in.Percentage.IsPositive() || in.Percentage.GreaterThan(maxPercentage) || in.End.Before(in.Start) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	discount := &entity.Discount{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		Name:       in.Name,
		Percentage: in.Percentage,
		Start:      in.Start,
		End:        in.End,
		CreatedAt:  time.Now(),
	}
	existing, err := uc.discountRepo.FindExact(ctx, discount)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}
	return toDiscountResponse(discount), nil
}

// GetDiscount devuelve el descuento o domain.ErrDiscountNotFound.
func (uc *CatalogUseCase) GetDiscount(ctx context.Context, id string) (*dto.DiscountResponse, error) {
	discount, err := uc.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, domain.ErrDiscountNotFound
	}
	return toDiscountResponse(discount), nil
}

// ListDiscounts lista los descuentos de un producto.
func (uc *CatalogUseCase) ListDiscounts(ctx context.Context, productID string) ([]*dto.DiscountResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	list, err := uc.discountRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DiscountResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDiscountResponse(d))
	}
	return out, nil
}

func toSoftwareResponse(p *entity.SoftwareProduct) *dto.SoftwareResponse {
	return &dto.SoftwareResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Version:     p.Version,
		Category:    p.Category,
	}
}

func toDiscountResponse(d *entity.Discount) *dto.DiscountResponse {
	return &dto.DiscountResponse{
		ID:         d.ID,
		ProductID:  d.ProductID,
		Name:       d.Name,
		Percentage: d.Percentage,
		Start:      d.Start,
		End:        d.End,
	}
}
