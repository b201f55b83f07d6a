package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount descuento porcentual con ventana de vigencia [Start, End] sobre un producto.
type Discount struct {
	ID         string
	ProductID  string
	Name       string
	Percentage decimal.Decimal // 0-100
	Start      time.Time
	End        time.Time
	CreatedAt  time.Time
}

// ActiveAt indica si el descuento está vigente en t (ambos extremos incluidos).
func (d *Discount) ActiveAt(t time.Time) bool {
	return !t.Before(d.Start) && !t.After(d.End)
}
