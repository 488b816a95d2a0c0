package mongodb

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
)

func TestNewProductDocument_CategoriaMalFormada(t *testing.T) {
	_, err := newProductDocument(&entity.Product{Name: "a", Price: decimal.NewFromInt(1), CategoryIDs: []string{"xyz"}})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestProductDocument_ToEntity(t *testing.T) {
	catID := primitive.NewObjectID()
	doc := productDocument{
		ID:          primitive.NewObjectID(),
		Name:        "Lápiz",
		About:       "HB",
		Price:       12.5,
		CategoryIDs: []primitive.ObjectID{catID},
		Categories:  []categoryDocument{{ID: catID, Name: "Oficina"}},
	}

	p := doc.toEntity()
	assert.Equal(t, doc.ID.Hex(), p.ID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(p.Price))
	assert.Equal(t, []string{catID.Hex()}, p.CategoryIDs)
	require.Len(t, p.Categories, 1)
	assert.Equal(t, "Oficina", p.Categories[0].Name)
}

func TestProductDocument_LecturaIgualAEscritura(t *testing.T) {
	cat := primitive.NewObjectID()
	in := &entity.Product{
		Name:        "Lápiz",
		About:       "HB",
		Price:       decimal.RequireFromString("10.10"),
		CategoryIDs: []string{strings.ToUpper(cat.Hex()), cat.Hex()},
	}
	doc, err := newProductDocument(in)
	require.NoError(t, err)
	doc.ID = primitive.NewObjectID()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var stored productDocument
	require.NoError(t, bson.Unmarshal(raw, &stored))

	got := stored.toEntity()
	assert.Equal(t, doc.ID.Hex(), got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.About, got.About)
	assert.True(t, in.Price.Equal(got.Price), "precio %s", got.Price)
	assert.Equal(t, []string{cat.Hex()}, got.CategoryIDs)
	assert.Equal(t, hexIDs(doc.CategoryIDs), got.CategoryIDs)
}

func TestEventDocument_ConservaTipo(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := &entity.Event{Kind: entity.EventGoal, Source: "web", URL: "https://x.io", Visitor: "v", CreatedAt: ts, Meta: map[string]any{"k": 1}, Goal: "signup"}

	doc := newEventDocument(e)
	back := doc.toEntity(entity.EventGoal)
	assert.Equal(t, entity.EventGoal, back.Kind)
	assert.Equal(t, "signup", back.Goal)
	assert.Empty(t, back.Action)
	assert.True(t, ts.Equal(back.CreatedAt))
	assert.Equal(t, 1, back.Meta["k"])
}

func TestParseObjectID(t *testing.T) {
	_, err := parseObjectID("123")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	oid := primitive.NewObjectID()
	got, err := parseObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)
}
