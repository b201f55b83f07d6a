// Package pdf genera el resumen imprimible de un contrato de licencia.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Contrato + ID        │  Estado + Fecha emisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + PESEL/KRS + contacto                      │
//	│  PRODUCTO: Nombre + versión + vigencia + soporte             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Monto | Estado                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Precio / Pagado / Saldo pendiente                  │
//	│  FOOTER: QR con el ID del contrato                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

var _ ports.ContractPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ContractPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// GenerateContractPDF genera el resumen del contrato y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateContractPDF(
	_ context.Context,
	contract *entity.Contract,
	client *entity.Client,
	product *entity.SoftwareProduct,
	payments []*entity.ContractPayment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Contrato "+contract.ID, true).
		WithAuthor("revenue-api", true).
		Build()

	m := maroto.New(cfg)

	// Header
	m.AddRows(headerRow(contract, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(productRow(contract, product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de pagos
	m.AddRows(tableHeaderRow())
	m.AddRows(paymentRows(payments)...)

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(contract.Price, paidTotal(payments)))

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(contract))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(c *entity.Contract, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("CONTRATO DE LICENCIA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID: "+c.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(statusLabel(c), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+issued.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func clientRow(client *entity.Client) core.Row {
	idLabel := "PESEL"
	if client.Kind == entity.ClientKindCompany {
		idLabel = "KRS"
	}
	return row.New(18).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.DisplayName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s: %s   |   Email: %s   |   Tel: %s",
				idLabel,
				client.TaxID(),
				nonEmpty(client.Email, "-"),
				nonEmpty(client.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func productRow(c *entity.Contract, p *entity.SoftwareProduct) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s (%s)", p.Name, c.SoftwareVersion, p.Category), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Vigencia: %s - %s   |   Soporte: %d año(s)",
				c.StartDate.Format(dateLayout),
				c.EndDate.Format(dateLayout),
				1+c.SupportExtensionYears,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Fecha", 4, align.Left),
		h("Monto", 4, align.Right),
		h("Estado", 4, align.Center),
	)
}

func paymentRows(payments []*entity.ContractPayment) []core.Row {
	if len(payments) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin pagos registrados", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		status := "Recibido"
		if p.IsRefunded {
			status = "Reembolsado"
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(p.PaymentDate.Format(dateLayout), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(formatMoney(p.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(4).Add(text.New(status, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func totalsRow(price, paid decimal.Decimal) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	balance := price.Sub(paid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Precio:", 0),
			label("Pagado:", 5),
			text.New("SALDO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 10,
			}),
		),
		col.New(3).Add(
			value(formatMoney(price), 0),
			value(formatMoney(paid), 5),
			text.New(formatMoney(balance), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 10,
			}),
		),
	)
}

func footerRow(c *entity.Contract) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(c.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Importes en PLN. Los pagos reembolsados no cuentan para el saldo.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("El contrato queda firmado cuando lo pagado iguala el precio.", props.Text{
				Size: 8, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(c *entity.Contract) string {
	switch {
	case c.IsSigned:
		return "FIRMADO"
	case c.IsActive:
		return "PENDIENTE DE PAGO"
	default:
		return "INACTIVO"
	}
}

// paidTotal suma los pagos no reembolsados.
func paidTotal(payments []*entity.ContractPayment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if !p.IsRefunded {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney separa miles con espacio y decimales con coma.
// Ej: 12345.5 -> "12 345,50 PLN"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac + " PLN"
}
