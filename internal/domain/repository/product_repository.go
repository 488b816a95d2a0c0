package repository

import (
	"context"

	"github.com/jhoicas/resource-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Un id mal formado devuelve domain.ErrInvalidID; un id ausente devuelve (nil, nil) en lecturas.
type ProductRepository interface {
	// Create asigna el ID y persiste el producto con sus categorías.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve el producto enriquecido con sus categorías.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs devuelve los productos existentes entre ids (sin enriquecer).
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	// List devuelve los productos que cumplen el filtro, enriquecidos.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// Update sobrescribe todos los campos mutables; domain.ErrNotFound si no existe.
	Update(ctx context.Context, product *entity.Product) error
	// Delete elimina y devuelve el producto borrado; (nil, nil) si no existía.
	Delete(ctx context.Context, id string) (*entity.Product, error)
}
