package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/revenue-api/internal/application/contracts"
	"github.com/jhoicas/revenue-api/internal/application/dto"
)

// ContractHandler contratos y pagos (protegido).
type ContractHandler struct {
	contracts *contracts.ContractUseCase
	payments  *contracts.PaymentUseCase
	val       *Validator
}

// NewContractHandler construye el handler.
func NewContractHandler(contractUC *contracts.ContractUseCase, paymentUC *contracts.PaymentUseCase, val *Validator) *ContractHandler {
	return &ContractHandler{contracts: contractUC, payments: paymentUC, val: val}
}

// Create godoc
// @Summary      Crear contrato
// @Description  Calcula el precio (descuento vigente más alto + 5% cliente recurrente) y crea el contrato sin firmar.
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato (fechas RFC3339)"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.contracts.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contrato
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.contracts.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByClient godoc
// @Summary      Contratos de un cliente
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  true  "ID del cliente"
// @Success      200  {array}   dto.ContractResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := uuidParam("client_id", c.Query("client_id"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.contracts.ListByClient(c.UserContext(), clientID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contrato sin firmar
// @Description  Desactiva el contrato; los pagos registrados se conservan.
// @Tags         contracts
// @Security     Bearer
// @Param        id   path  string  true  "ID del contrato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.contracts.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Payments godoc
// @Summary      Pagos de un contrato
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {array}   dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/payments [get]
func (h *ContractHandler) Payments(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.payments.ListByContract(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Resumen del contrato en PDF
// @Tags         contracts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/pdf [get]
func (h *ContractHandler) PDF(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.contracts.PDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="contrato-%s.pdf"`, id))
	return c.Send(doc)
}

// AddPayment godoc
// @Summary      Registrar pago
// @Description  Si la suma de pagos iguala el precio, el contrato queda firmado.
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPaymentRequest  true  "Pago (fecha RFC3339)"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contracts/payments [post]
func (h *ContractHandler) AddPayment(c *fiber.Ctx) error {
	var in dto.AddPaymentRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.payments.Add(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPayment godoc
// @Summary      Obtener pago
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/payments/{id} [get]
func (h *ContractHandler) GetPayment(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.payments.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
