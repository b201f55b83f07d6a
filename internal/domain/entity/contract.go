package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract contrato de licencia de un producto para un cliente.
// Se crea con IsSigned=false, IsActive=true. IsSigned pasa a true cuando la suma de
// pagos iguala Price; IsActive pasa a false por borrado (solo sin firmar) o por expiración.
type Contract struct {
	ID                    string
	ClientID              string
	ProductID             string
	SoftwareVersion       string
	StartDate             time.Time
	EndDate               time.Time
	Price                 decimal.Decimal
	SupportExtensionYears int
	IsSigned              bool
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Covers indica si t cae dentro de la vigencia [StartDate, EndDate].
func (c *Contract) Covers(t time.Time) bool {
	return !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// Expired indica si el contrato debe vencerse: activo, sin firmar y con EndDate anterior a now.
func (c *Contract) Expired(now time.Time) bool {
	return c.IsActive && !c.IsSigned && c.EndDate.Before(now)
}
