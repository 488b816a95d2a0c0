package mongodb

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
)

type categoryDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// productDocument precio como double; categories solo llega desde $lookup.
type productDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	About       string               `bson:"about"`
	Price       float64              `bson:"price"`
	CategoryIDs []primitive.ObjectID `bson:"categoryIds"`
	Categories  []categoryDocument   `bson:"categories,omitempty"`
}

type eventDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Source    string             `bson:"source"`
	URL       string             `bson:"url"`
	Visitor   string             `bson:"visitor"`
	CreatedAt time.Time          `bson:"createdAt"`
	Meta      bson.M             `bson:"meta"`
	Action    string             `bson:"action,omitempty"`
	Goal      string             `bson:"goal,omitempty"`
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func parseObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseObjectID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

// uniqueObjectIDs como parseObjectIDs pero sin duplicados, conservando el orden.
func uniqueObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids, err := parseObjectIDs(ids)
	if err != nil {
		return nil, err
	}
	seen := make(map[primitive.ObjectID]struct{}, len(oids))
	out := oids[:0]
	for _, oid := range oids {
		if _, ok := seen[oid]; ok {
			continue
		}
		seen[oid] = struct{}{}
		out = append(out, oid)
	}
	return out, nil
}

func hexIDs(oids []primitive.ObjectID) []string {
	out := make([]string, 0, len(oids))
	for _, oid := range oids {
		out = append(out, oid.Hex())
	}
	return out
}

func newProductDocument(p *entity.Product) (productDocument, error) {
	categoryIDs, err := uniqueObjectIDs(p.CategoryIDs)
	if err != nil {
		return productDocument{}, err
	}
	price, _ := p.Price.Float64()
	return productDocument{
		Name:        p.Name,
		About:       p.About,
		Price:       price,
		CategoryIDs: categoryIDs,
	}, nil
}

func (d productDocument) toEntity() *entity.Product {
	p := &entity.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		About:       d.About,
		Price:       decimal.NewFromFloat(d.Price),
		CategoryIDs: hexIDs(d.CategoryIDs),
	}
	for _, c := range d.Categories {
		p.Categories = append(p.Categories, entity.Category{ID: c.ID.Hex(), Name: c.Name})
	}
	return p
}

func newEventDocument(e *entity.Event) eventDocument {
	return eventDocument{
		Source:    e.Source,
		URL:       e.URL,
		Visitor:   e.Visitor,
		CreatedAt: e.CreatedAt,
		Meta:      bson.M(e.Meta),
		Action:    e.Action,
		Goal:      e.Goal,
	}
}

func (d eventDocument) toEntity(kind entity.EventKind) *entity.Event {
	return &entity.Event{
		ID:        d.ID.Hex(),
		Kind:      kind,
		Source:    d.Source,
		URL:       d.URL,
		Visitor:   d.Visitor,
		CreatedAt: d.CreatedAt.UTC(),
		Meta:      map[string]any(d.Meta),
		Action:    d.Action,
		Goal:      d.Goal,
	}
}
