package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/infrastructure/pdf"
)

func TestGenerateOrderReceipt(t *testing.T) {
	items := []entity.OrderItem{
		{ProductID: "p1", UnitPrice: decimal.NewFromInt(10)},
		{ProductID: "p2", UnitPrice: decimal.NewFromInt(20)},
	}
	order := &entity.Order{
		ID:        "6f1c2a4e-8f4b-4a57-9a43-0f5b7f6d2b11",
		UserID:    "u1",
		Items:     items,
		Total:     entity.OrderTotal(items),
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		User:      &entity.User{ID: "u1", Username: "ana", Email: "ana@example.com"},
		Products:  []*entity.Product{{ID: "p1", Name: "Lápiz"}},
	}

	out, err := pdf.NewReceiptGenerator("resource-api").GenerateOrderReceipt(context.Background(), order)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
