package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre la colección products.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection("products")}
}

// lookupCategories resuelve categoryIds contra la colección categories; ids desconocidos se omiten.
var lookupCategories = bson.D{{Key: "$lookup", Value: bson.D{
	{Key: "from", Value: "categories"},
	{Key: "localField", Value: "categoryIds"},
	{Key: "foreignField", Value: "_id"},
	{Key: "as", Value: "categories"},
}}}

// Create inserta el producto; el ObjectID lo genera el driver.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc, err := newProductDocument(product)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = doc.ID.Hex()
	product.CategoryIDs = hexIDs(doc.CategoryIDs)
	return nil
}

// GetByID obtiene un producto enriquecido con sus categorías.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	list, err := r.aggregate(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// GetByIDs devuelve los productos existentes entre ids.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	oids, err := parseObjectIDs(ids)
	if err != nil {
		return nil, err
	}
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	return decodeProducts(ctx, cursor)
}

// List lista productos filtrados, enriquecidos con sus categorías.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	match, err := buildFilter(filter.Conditions(), productFields)
	if err != nil {
		return nil, err
	}
	return r.aggregate(ctx, match)
}

// Update sobrescribe name/about/price/categoryIds.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	oid, err := parseObjectID(product.ID)
	if err != nil {
		return err
	}
	doc, err := newProductDocument(product)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: doc.Name},
		{Key: "about", Value: doc.About},
		{Key: "price", Value: doc.Price},
		{Key: "categoryIds", Value: doc.CategoryIDs},
	}}})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	product.CategoryIDs = hexIDs(doc.CategoryIDs)
	return nil
}

// Delete elimina y devuelve el documento borrado.
func (r *ProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc productDocument
	err = r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *ProductRepo) aggregate(ctx context.Context, match bson.D) ([]*entity.Product, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		lookupCategories,
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	return decodeProducts(ctx, cursor)
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Product, error) {
	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}
