package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio (sin dependencias externas).
// Los errores específicos envuelven a uno de estos con %w para que la capa HTTP
// pueda clasificarlos con errors.Is.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrExternalService = errors.New("servicio externo no disponible")
)

// Validación.
var (
	ErrInvalidDuration     = fmt.Errorf("%w: la duración del contrato debe estar entre 3 y 30 días", ErrInvalidInput)
	ErrInvalidSupportYears = fmt.Errorf("%w: la extensión de soporte solo puede ser de 0 a 3 años", ErrInvalidInput)
	ErrInvalidAmount       = fmt.Errorf("%w: el monto debe ser mayor que cero y tener a lo sumo dos decimales", ErrInvalidInput)
)

// Recursos inexistentes.
var (
	ErrClientNotFound   = fmt.Errorf("%w: el cliente no existe", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("%w: el producto no existe o la versión no coincide", ErrNotFound)
	ErrContractNotFound = fmt.Errorf("%w: el contrato no existe", ErrNotFound)
	ErrPaymentNotFound  = fmt.Errorf("%w: el pago no existe", ErrNotFound)
	ErrDiscountNotFound = fmt.Errorf("%w: el descuento no existe", ErrNotFound)
	ErrRateNotFound     = fmt.Errorf("%w: tipo de cambio no encontrado", ErrNotFound)
)

// Reglas de negocio.
var (
	ErrDuplicate               = fmt.Errorf("%w: recurso duplicado", ErrConflict)
	ErrDuplicateActiveContract = fmt.Errorf("%w: el cliente ya tiene un contrato activo para este producto", ErrConflict)
	ErrCannotDeleteSigned      = fmt.Errorf("%w: no se puede eliminar un contrato firmado", ErrConflict)
	ErrPaymentOutOfWindow      = fmt.Errorf("%w: el pago debe realizarse dentro del periodo del contrato", ErrConflict)
	ErrContractInactive        = fmt.Errorf("%w: el contrato no está activo", ErrConflict)
	ErrOverpayRejected         = fmt.Errorf("%w: la suma de pagos no puede superar el precio del contrato", ErrConflict)
)

// Autenticación.
var (
	ErrInvalidCredentials  = fmt.Errorf("%w: usuario o contraseña inválidos", ErrUnauthorized)
	ErrInvalidRefreshToken = fmt.Errorf("%w: refresh token inválido", ErrUnauthorized)
)

// ErrExchangeService indica que el proveedor de tipos de cambio no respondió o devolvió datos inválidos.
var ErrExchangeService = fmt.Errorf("%w: error consultando tipos de cambio", ErrExternalService)
