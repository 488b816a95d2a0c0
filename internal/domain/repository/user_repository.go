package repository

import (
	"context"

	"github.com/jhoicas/resource-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create asigna el ID; domain.ErrDuplicate si username o email ya existen.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	// Update sobrescribe username, email y hash; domain.ErrNotFound si no existe.
	Update(ctx context.Context, user *entity.User) error
	// Delete devuelve el usuario borrado; (nil, nil) si no existía; domain.ErrConflict si tiene pedidos.
	Delete(ctx context.Context, id string) (*entity.User, error)
}
