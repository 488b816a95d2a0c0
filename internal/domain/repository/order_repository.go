package repository

import (
	"context"

	"github.com/jhoicas/resource-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas (order_items).
// Las escrituras de varios pasos deben ejecutarse dentro de OrderTxRunner.
type OrderRepository interface {
	// Create asigna el ID y persiste cabecera y líneas.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve el pedido enriquecido con usuario y productos.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	// Update sobrescribe usuario, total y updated_at; domain.ErrNotFound si no existe.
	Update(ctx context.Context, order *entity.Order) error
	// ReplaceItems borra las líneas existentes e inserta las nuevas.
	ReplaceItems(ctx context.Context, orderID string, items []entity.OrderItem) error
	// Delete borra primero las líneas y luego la cabecera; (nil, nil) si no existía.
	Delete(ctx context.Context, id string) (*entity.Order, error)
}

// OrderTxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error se hace rollback y ningún paso queda visible.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders OrderRepository, products ProductRepository) error) error
}
