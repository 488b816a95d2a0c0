package repository

import "github.com/shopspring/decimal"

// FilterField campos filtrables. Es un conjunto cerrado: cada adaptador traduce
// cada valor a un predicado fijo y parametrizado, nunca concatena el valor recibido.
type FilterField string

const (
	FilterName     FilterField = "name"     // subcadena, sin distinguir mayúsculas
	FilterAbout    FilterField = "about"    // subcadena, sin distinguir mayúsculas
	FilterMaxPrice FilterField = "price"    // cota superior inclusiva
	FilterUsername FilterField = "username" // subcadena, sin distinguir mayúsculas
	FilterEmail    FilterField = "email"    // subcadena, sin distinguir mayúsculas
)

// Condition un filtro activo: campo + valor (string o decimal.Decimal).
type Condition struct {
	Field FilterField
	Value any
}

// ProductFilter filtros opcionales del listado de productos.
type ProductFilter struct {
	Name     string
	About    string
	MaxPrice *decimal.Decimal
}

// Conditions devuelve solo los filtros informados, en orden estable.
func (f ProductFilter) Conditions() []Condition {
	var out []Condition
	if f.Name != "" {
		out = append(out, Condition{Field: FilterName, Value: f.Name})
	}
	if f.About != "" {
		out = append(out, Condition{Field: FilterAbout, Value: f.About})
	}
	if f.MaxPrice != nil {
		out = append(out, Condition{Field: FilterMaxPrice, Value: *f.MaxPrice})
	}
	return out
}

// UserFilter filtros opcionales del listado de usuarios.
type UserFilter struct {
	Username string
	Email    string
}

// Conditions devuelve solo los filtros informados, en orden estable.
func (f UserFilter) Conditions() []Condition {
	var out []Condition
	if f.Username != "" {
		out = append(out, Condition{Field: FilterUsername, Value: f.Username})
	}
	if f.Email != "" {
		out = append(out, Condition{Field: FilterEmail, Value: f.Email})
	}
	return out
}
