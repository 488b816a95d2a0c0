package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/resource-api/internal/domain/entity"
)

func TestOrderTotal_AplicaMarkup(t *testing.T) {
	items := entity.NewOrderItems([]*entity.Product{
		{ID: "a", Price: decimal.NewFromInt(10)},
		{ID: "b", Price: decimal.NewFromInt(20)},
	})

	total := entity.OrderTotal(items)

	assert.True(t, total.Equal(decimal.NewFromInt(36)), "(10+20)×1.2 debe ser 36, obtenido %s", total)
}

func TestOrderTotal_SinLineas(t *testing.T) {
	assert.True(t, entity.OrderTotal(nil).IsZero())
}

func TestOrderTotal_RedondeaADosDecimales(t *testing.T) {
	items := []entity.OrderItem{{ProductID: "a", UnitPrice: decimal.RequireFromString("0.333")}}

	assert.Equal(t, "0.4", entity.OrderTotal(items).String())
}

func TestEventKind_Collection(t *testing.T) {
	assert.Equal(t, "views", entity.EventView.Collection())
	assert.Equal(t, "actions", entity.EventAction.Collection())
	assert.Equal(t, "goals", entity.EventGoal.Collection())
}
