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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre la colección categories.
type CategoryRepo struct {
	coll *mongo.Collection
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{coll: db.Collection("categories")}
}

// Create inserta la categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	doc := categoryDocument{ID: primitive.NewObjectID(), Name: category.Name}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = doc.ID.Hex()
	return nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(docs))
	for _, d := range docs {
		list = append(list, &entity.Category{ID: d.ID.Hex(), Name: d.Name})
	}
	return list, nil
}
