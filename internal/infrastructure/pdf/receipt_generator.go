// Package pdf genera el comprobante PDF de un pedido con Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────┐
//	│  COMPROBANTE DE PEDIDO        │  N° + fecha        │
//	│  CLIENTE: username + email                         │
//	│  TABLA: # | Producto | Precio                      │
//	│  TOTALES: Subtotal / Recargo / TOTAL               │
//	│  QR con el id del pedido                           │
//	└──────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/resource-api/internal/application/ports"
	"github.com/jhoicas/resource-api/internal/domain/entity"
)

var _ ports.OrderReceiptGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator implementa ports.OrderReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct {
	issuer string
}

// NewReceiptGenerator construye el generador; issuer aparece como autor del documento.
func NewReceiptGenerator(issuer string) *ReceiptGenerator {
	return &ReceiptGenerator{issuer: issuer}
}

// GenerateOrderReceipt genera el PDF y devuelve sus bytes. order debe venir enriquecido.
func (g *ReceiptGenerator) GenerateOrderReceipt(_ context.Context, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido "+order.ID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order.User))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))
	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(40).Add(
		col.New(4).Add(code.NewQr(order.ID, props.Rect{Percent: 95, Center: true})),
		col.New(8),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(order *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func customerRow(user *entity.User) core.Row {
	name, email := "-", "-"
	if user != nil {
		name, email = user.Username, user.Email
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Email: "+email, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 8, align.Left),
		h("Precio", 3, align.Right),
	)
}

// itemRows una fila por línea; el nombre sale del producto enriquecido si existe.
func itemRows(order *entity.Order) []core.Row {
	names := make(map[string]string, len(order.Products))
	for _, p := range order.Products {
		names[p.ID] = p.Name
	}
	rows := make([]core.Row, 0, len(order.Items))
	for i, it := range order.Items {
		name, ok := names[it.ProductID]
		if !ok {
			name = it.ProductID
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(8).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(money(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(order *entity.Order) core.Row {
	subtotal := decimal.Zero
	for _, it := range order.Items {
		subtotal = subtotal.Add(it.UnitPrice)
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:"),
			label("Recargo (x"+entity.OrderMarkup.String()+"):"),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 10}),
		),
		col.New(3).Add(
			value(money(subtotal)),
			value(money(order.Total.Sub(subtotal))),
			text.New(money(order.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 10}),
		),
	)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
