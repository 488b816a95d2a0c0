package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// CategoryIDs son las relaciones persistidas; Categories solo se llena al enriquecer lecturas.
type Product struct {
	ID          string
	Name        string
	About       string
	Price       decimal.Decimal // siempre > 0
	CategoryIDs []string
	Categories  []Category
}
