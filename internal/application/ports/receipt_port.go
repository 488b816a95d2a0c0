package ports

import (
	"context"

	"github.com/jhoicas/resource-api/internal/domain/entity"
)

// OrderReceiptGenerator genera el comprobante PDF de un pedido enriquecido (usuario + productos).
type OrderReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}
