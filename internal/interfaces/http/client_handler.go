package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/revenue-api/internal/application/clients"
	"github.com/jhoicas/revenue-api/internal/application/dto"
)

// ClientHandler maneja personas naturales y empresas (protegido).
type ClientHandler struct {
	uc  *clients.ClientUseCase
	val *Validator
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *clients.ClientUseCase, val *Validator) *ClientHandler {
	return &ClientHandler{uc: uc, val: val}
}

// List godoc
// @Summary      Listar clientes activos
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateIndividual godoc
// @Summary      Crear persona natural
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndividualRequest  true  "Datos de la persona"
// @Success      201   {object}  dto.IndividualResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients/individual [post]
func (h *ClientHandler) CreateIndividual(c *fiber.Ctx) error {
	var in dto.CreateIndividualRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateIndividual(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetIndividual godoc
// @Summary      Obtener persona natural
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.IndividualResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/individual/{id} [get]
func (h *ClientHandler) GetIndividual(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetIndividual(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateIndividual godoc
// @Summary      Actualizar persona natural
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateIndividualRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.IndividualResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/individual/{id} [put]
func (h *ClientHandler) UpdateIndividual(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateIndividualRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateIndividual(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteIndividual godoc
// @Summary      Eliminar persona natural (baja lógica)
// @Tags         clients
// @Security     Bearer
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/individual/{id} [delete]
func (h *ClientHandler) DeleteIndividual(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteIndividual(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCompany godoc
// @Summary      Crear empresa
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients/company [post]
func (h *ClientHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateCompany(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCompany godoc
// @Summary      Obtener empresa
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/company/{id} [get]
func (h *ClientHandler) GetCompany(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetCompany(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateCompany godoc
// @Summary      Actualizar empresa
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/company/{id} [put]
func (h *ClientHandler) UpdateCompany(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateCompanyRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateCompany(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteCompany godoc
// @Summary      Eliminar empresa (baja lógica)
// @Tags         clients
// @Security     Bearer
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/company/{id} [delete]
func (h *ClientHandler) DeleteCompany(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteCompany(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
