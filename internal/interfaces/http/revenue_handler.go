package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/application/revenue"
)

// RevenueHandler ingresos reconocidos y previstos.
type RevenueHandler struct {
	uc  *revenue.RevenueUseCase
	val *Validator
}

// NewRevenueHandler construye el handler.
func NewRevenueHandler(uc *revenue.RevenueUseCase, val *Validator) *RevenueHandler {
	return &RevenueHandler{uc: uc, val: val}
}

// Current godoc
// @Summary      Ingreso reconocido
// @Description  Suma de precios de contratos firmados, opcionalmente por producto y convertida a otra moneda.
// @Tags         revenue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RevenueRequest  false  "product_id y currency opcionales"
// @Success      200   {object}  dto.RevenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/revenue/current [post]
func (h *RevenueHandler) Current(c *fiber.Ctx) error {
	in, err := h.parse(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Current(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Forecast godoc
// @Summary      Ingreso previsto
// @Description  Como current, pero incluye contratos activos aún sin firmar.
// @Tags         revenue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RevenueRequest  false  "product_id y currency opcionales"
// @Success      200   {object}  dto.RevenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/revenue/forecast [post]
func (h *RevenueHandler) Forecast(c *fiber.Ctx) error {
	in, err := h.parse(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Forecast(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parse acepta cuerpo vacío (todos los productos, PLN).
func (h *RevenueHandler) parse(c *fiber.Ctx) (dto.RevenueRequest, error) {
	var in dto.RevenueRequest
	if len(c.Body()) == 0 {
		return in, nil
	}
	if err := bind(c, h.val, &in); err != nil {
		return in, err
	}
	return in, nil
}
