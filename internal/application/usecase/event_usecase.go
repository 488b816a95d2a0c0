package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

// Límites del listado de eventos.
const (
	DefaultEventLimit = 100
	MaxEventLimit     = 1000
)

// EventUseCase captura y lectura de eventos de analítica (views, actions, goals).
type EventUseCase struct {
	repo repository.EventRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

// CreateView registra una visita.
func (uc *EventUseCase) CreateView(ctx context.Context, in dto.CreateViewRequest) (*dto.EventResponse, error) {
	return uc.insert(ctx, newEvent(entity.EventView, in))
}

// CreateAction registra una acción.
func (uc *EventUseCase) CreateAction(ctx context.Context, in dto.CreateActionRequest) (*dto.EventResponse, error) {
	event := newEvent(entity.EventAction, in.CreateViewRequest)
	event.Action = in.Action
	return uc.insert(ctx, event)
}

// CreateGoal registra un objetivo cumplido.
func (uc *EventUseCase) CreateGoal(ctx context.Context, in dto.CreateGoalRequest) (*dto.EventResponse, error) {
	event := newEvent(entity.EventGoal, in.CreateViewRequest)
	event.Goal = in.Goal
	return uc.insert(ctx, event)
}

// List devuelve los últimos eventos del tipo; limit fuera de rango usa el valor por defecto o el máximo.
func (uc *EventUseCase) List(ctx context.Context, kind entity.EventKind, limit int) ([]dto.EventResponse, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		limit = MaxEventLimit
	}
	list, err := uc.repo.List(ctx, kind, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventResponse(e))
	}
	return items, nil
}

func (uc *EventUseCase) insert(ctx context.Context, event *entity.Event) (*dto.EventResponse, error) {
	if err := uc.repo.Insert(ctx, event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

func newEvent(kind entity.EventKind, in dto.CreateViewRequest) *entity.Event {
	event := &entity.Event{
		Kind:    kind,
		Source:  in.Source,
		URL:     in.URL,
		Visitor: in.Visitor,
		Meta:    in.Meta,
	}
	if in.CreatedAt != nil {
		// BSON guarda fechas en milisegundos UTC.
		event.CreatedAt = in.CreatedAt.Time.UTC().Truncate(time.Millisecond)
	}
	return event
}
