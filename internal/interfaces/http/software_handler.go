package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/revenue-api/internal/application/catalog"
	"github.com/jhoicas/revenue-api/internal/application/dto"
)

// SoftwareHandler catálogo de productos y descuentos.
type SoftwareHandler struct {
	uc  *catalog.CatalogUseCase
	val *Validator
}

// NewSoftwareHandler construye el handler.
func NewSoftwareHandler(uc *catalog.CatalogUseCase, val *Validator) *SoftwareHandler {
	return &SoftwareHandler{uc: uc, val: val}
}

// Create godoc
// @Summary      Crear producto de software
// @Tags         software
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSoftwareRequest  true  "Datos del producto"
// @Success      201   {object}  dto.SoftwareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/software [post]
func (h *SoftwareHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSoftwareRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         software
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.SoftwareResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/software/{id} [get]
func (h *SoftwareHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetProduct(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         software
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.SoftwareResponse
// @Router       /api/software [get]
func (h *SoftwareHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, errInvalidBody)
	}
	if err := h.val.Struct(page); err != nil {
		return writeError(c, err)
	}
	page.DefaultPage()
	out, err := h.uc.ListProducts(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateDiscount godoc
// @Summary      Crear descuento
// @Tags         software
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDiscountRequest  true  "Datos del descuento"
// @Success      201   {object}  dto.DiscountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/software/discounts [post]
func (h *SoftwareHandler) CreateDiscount(c *fiber.Ctx) error {
	var in dto.CreateDiscountRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateDiscount(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDiscount godoc
// @Summary      Obtener descuento por ID
// @Tags         software
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del descuento"
// @Success      200  {object}  dto.DiscountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/software/discounts/{id} [get]
func (h *SoftwareHandler) GetDiscount(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetDiscount(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListDiscounts godoc
// @Summary      Descuentos de un producto
// @Tags         software
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.DiscountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/software/{id}/discounts [get]
func (h *SoftwareHandler) ListDiscounts(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListDiscounts(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
