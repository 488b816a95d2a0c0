package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/resource-api/internal/domain/repository"
)

func TestBuildFilter_Vacio(t *testing.T) {
	filter, err := buildFilter(nil, productFields)
	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestBuildFilter_Producto(t *testing.T) {
	maxPrice := decimal.RequireFromString("19.5")
	f := repository.ProductFilter{Name: "a.b*", MaxPrice: &maxPrice}

	filter, err := buildFilter(f.Conditions(), productFields)
	require.NoError(t, err)
	require.Len(t, filter, 2)

	assert.Equal(t, "name", filter[0].Key)
	assert.Equal(t, primitive.Regex{Pattern: `a\.b\*`, Options: "i"}, filter[0].Value)
	assert.Equal(t, "price", filter[1].Key)
	assert.Equal(t, bson.D{{Key: "$lte", Value: 19.5}}, filter[1].Value)
}

func TestBuildFilter_CampoNoSoportado(t *testing.T) {
	conds := []repository.Condition{{Field: repository.FilterUsername, Value: "ana"}}
	_, err := buildFilter(conds, productFields)
	assert.Error(t, err)
}
