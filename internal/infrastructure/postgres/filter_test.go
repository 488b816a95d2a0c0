package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/domain/repository"
)

func TestBuildWhere_SinFiltros(t *testing.T) {
	where, args, err := buildWhere(repository.ProductFilter{}.Conditions(), productClauses)
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhere_Producto(t *testing.T) {
	maxPrice := decimal.NewFromInt(10)
	f := repository.ProductFilter{Name: "lá", About: "50%_off", MaxPrice: &maxPrice}

	where, args, err := buildWhere(f.Conditions(), productClauses)
	require.NoError(t, err)
	assert.Equal(t, " WHERE p.name ILIKE $1 AND p.about ILIKE $2 AND p.price <= $3", where)
	require.Len(t, args, 3)
	assert.Equal(t, "%lá%", args[0])
	assert.Equal(t, `%50\%\_off%`, args[1])
	assert.True(t, maxPrice.Equal(args[2].(decimal.Decimal)))
}

func TestBuildWhere_ValorNoSeConcatena(t *testing.T) {
	f := repository.UserFilter{Username: "x' OR 1=1 --"}
	where, args, err := buildWhere(f.Conditions(), userClauses)
	require.NoError(t, err)
	assert.Equal(t, " WHERE username ILIKE $1", where)
	assert.NotContains(t, where, "OR 1=1")
	assert.Equal(t, "%x' OR 1=1 --%", args[0])
}

func TestBuildWhere_CampoNoSoportado(t *testing.T) {
	conds := []repository.Condition{{Field: repository.FilterEmail, Value: "a"}}
	_, _, err := buildWhere(conds, productClauses)
	assert.Error(t, err)
}
