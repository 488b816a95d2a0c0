package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderMarkup factor aplicado a la suma de precios de los productos del pedido.
// Se conserva el valor histórico (1.2); su significado (impuesto o margen) no está confirmado.
var OrderMarkup = decimal.RequireFromString("1.2")

// Order cabecera de un pedido. Total siempre se calcula en servidor.
type Order struct {
	ID        string
	UserID    string
	Total     decimal.Decimal
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time

	// Enriquecimiento (solo lecturas)
	User     *User
	Products []*Product
}

// OrderItem asociación pedido-producto con el precio vigente al momento del pedido.
type OrderItem struct {
	ProductID string
	UnitPrice decimal.Decimal
}

// ProductIDs devuelve los ids de producto de las líneas, en orden.
func (o *Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

// NewOrderItems arma las líneas del pedido a partir de los productos resueltos.
func NewOrderItems(products []*Product) []OrderItem {
	items := make([]OrderItem, 0, len(products))
	for _, p := range products {
		items = append(items, OrderItem{ProductID: p.ID, UnitPrice: p.Price})
	}
	return items
}

// OrderTotal = Σ precio × OrderMarkup, redondeado a 2 decimales.
func OrderTotal(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.UnitPrice)
	}
	return sum.Mul(OrderMarkup).Round(2)
}
