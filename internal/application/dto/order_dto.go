package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest forma completa sin id (POST y PUT). El total nunca se recibe del cliente.
type CreateOrderRequest struct {
	UserID     string   `json:"userId" validate:"required,uuid"`
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,uuid"`
}

// PatchOrderRequest forma parcial.
type PatchOrderRequest struct {
	UserID     *string  `json:"userId" validate:"omitempty,uuid"`
	ProductIDs []string `json:"productIds" validate:"omitempty,min=1,dive,uuid"`
}

// IsEmpty indica que no se informó ningún campo.
func (r PatchOrderRequest) IsEmpty() bool {
	return r.UserID == nil && r.ProductIDs == nil
}

// OrderResponse salida de un pedido, enriquecido con usuario y productos en lecturas.
type OrderResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	Total      decimal.Decimal   `json:"total"`
	ProductIDs []string          `json:"productIds"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	User       *UserResponse     `json:"user,omitempty"`
	Products   []ProductResponse `json:"products,omitempty"`
}
