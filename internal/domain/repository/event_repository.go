package repository

import (
	"context"

	"github.com/jhoicas/resource-api/internal/domain/entity"
)

// EventRepository define el puerto append-only de eventos de analítica.
type EventRepository interface {
	// Insert asigna el ID y guarda el evento en la colección de su tipo.
	Insert(ctx context.Context, event *entity.Event) error
	// List devuelve los últimos eventos del tipo, más recientes primero.
	List(ctx context.Context, kind entity.EventKind, limit int) ([]*entity.Event, error)
}
