package dto

import "github.com/shopspring/decimal"

// CreateProductRequest forma completa sin id (POST y PUT).
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	About       string          `json:"about" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0,decimals=2"`
	CategoryIDs []string        `json:"categoryIds" validate:"omitempty,dive,required"`
}

// PatchProductRequest forma parcial: solo se aplican los campos presentes.
type PatchProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	About       *string          `json:"about" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0,decimals=2"`
	CategoryIDs []string         `json:"categoryIds" validate:"omitempty,dive,required"`
}

// IsEmpty indica que no se informó ningún campo.
func (r PatchProductRequest) IsEmpty() bool {
	return r.Name == nil && r.About == nil && r.Price == nil && r.CategoryIDs == nil
}

// ProductQuery filtros del listado (?name=&about=&price=).
type ProductQuery struct {
	Name  string `query:"name"`
	About string `query:"about"`
	Price string `query:"price"`
}

// ProductResponse salida de un producto. Categories solo en lecturas enriquecidas.
type ProductResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	About       string             `json:"about"`
	Price       decimal.Decimal    `json:"price"`
	CategoryIDs []string           `json:"categoryIds"`
	Categories  []CategoryResponse `json:"categories,omitempty"`
}
