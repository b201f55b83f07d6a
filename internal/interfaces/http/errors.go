package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/domain"
)

// errInvalidBody cuerpo JSON ilegible o con tipos incorrectos.
var errInvalidBody = errors.New("cuerpo inválido")

// codes específicos; se evalúan antes que el tipo raíz.
var specificCodes = []struct {
	err  error
	code string
}{
	{domain.ErrDuplicateActiveContract, "ACTIVE_CONTRACT_EXISTS"},
	{domain.ErrCannotDeleteSigned, "CONTRACT_SIGNED"},
	{domain.ErrPaymentOutOfWindow, "PAYMENT_OUT_OF_WINDOW"},
	{domain.ErrContractInactive, "CONTRACT_INACTIVE"},
	{domain.ErrOverpayRejected, "OVERPAY"},
	{domain.ErrDuplicate, "DUPLICATE"},
	{domain.ErrRateNotFound, "RATE_NOT_FOUND"},
	{domain.ErrInvalidRefreshToken, "INVALID_REFRESH_TOKEN"},
	{domain.ErrInvalidCredentials, "INVALID_CREDENTIALS"},
}

// writeError traduce un error de dominio a status + dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos de entrada inválidos",
			Fields:  vErr.Fields,
		})
	}
	if errors.Is(err, errInvalidBody) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}

	status, code := classify(err)
	msg := err.Error()
	switch status {
	case fiber.StatusInternalServerError:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		msg = "error interno del servidor"
	case fiber.StatusBadGateway:
		log.Warn().Err(err).Str("path", c.Path()).Msg("fallo de servicio externo")
		msg = domain.ErrExchangeService.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func classify(err error) (int, string) {
	status := fiber.StatusInternalServerError
	code := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrExternalService):
		status, code = fiber.StatusBadGateway, "EXTERNAL_SERVICE"
	default:
		return status, code
	}
	for _, sc := range specificCodes {
		if errors.Is(err, sc.err) {
			return status, sc.code
		}
	}
	return status, code
}
