package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/revenue-api/internal/application/auth"
	"github.com/jhoicas/revenue-api/internal/application/dto"
)

// AuthHandler maneja registro, login, refresh y cierre de sesión.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	val *Validator
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, val *Validator) *AuthHandler {
	return &AuthHandler{uc: uc, val: val}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar tokens
// @Description  Revoca el refresh token recibido y emite un par nuevo.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refresh_token"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Refresh(c.UserContext(), in.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SignOut godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.RefreshRequest  true  "refresh_token"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := bind(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.SignOut(c.UserContext(), in.RefreshToken); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SignOutAll godoc
// @Summary      Cerrar todas las sesiones del usuario
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/sign-out-all [post]
func (h *AuthHandler) SignOutAll(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	if err := h.uc.SignOutAll(c.UserContext(), userID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
