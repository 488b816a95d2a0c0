package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo eventos de analítica; una colección por tipo (views, actions, goals). Solo inserta y lee.
type EventRepo struct {
	db *mongo.Database
}

// NewEventRepository construye el adaptador.
func NewEventRepository(db *mongo.Database) *EventRepo {
	return &EventRepo{db: db}
}

// Insert guarda el evento en la colección de su tipo.
func (r *EventRepo) Insert(ctx context.Context, event *entity.Event) error {
	doc := newEventDocument(event)
	doc.ID = primitive.NewObjectID()
	if _, err := r.db.Collection(event.Kind.Collection()).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", event.Kind, err)
	}
	event.ID = doc.ID.Hex()
	return nil
}

// List devuelve hasta limit eventos del tipo, más recientes primero.
func (r *EventRepo) List(ctx context.Context, kind entity.EventKind, limit int) ([]*entity.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.db.Collection(kind.Collection()).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", kind.Collection(), err)
	}
	var docs []eventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind.Collection(), err)
	}
	list := make([]*entity.Event, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity(kind))
	}
	return list, nil
}
