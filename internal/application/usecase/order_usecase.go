package usecase

import (
	"context"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/ports"
	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos. Toda escritura corre dentro de una transacción:
// resolver productos, calcular total, persistir cabecera y líneas.
type OrderUseCase struct {
	orders   repository.OrderRepository
	tx       repository.OrderTxRunner
	receipts ports.OrderReceiptGenerator
}

// NewOrderUseCase construye el caso de uso. receipts puede ser nil si no se exponen comprobantes.
func NewOrderUseCase(orders repository.OrderRepository, tx repository.OrderTxRunner, receipts ports.OrderReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{orders: orders, tx: tx, receipts: receipts}
}

// Create resuelve los productos, calcula el total (Σ precio × markup) y persiste el pedido.
// domain.ErrInvalidReference si algún producto no existe.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var created *entity.Order
	err := uc.tx.RunOrder(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		items, err := resolveItems(ctx, products, in.ProductIDs)
		if err != nil {
			return err
		}
		now := timestamp()
		order := &entity.Order{
			UserID:    in.UserID,
			Items:     items,
			Total:     entity.OrderTotal(items),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		created, err = orders.GetByID(ctx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// GetByID devuelve el pedido enriquecido con usuario y productos.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve todos los pedidos enriquecidos.
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Replace sustituye usuario y conjunto completo de productos, recalculando el total.
func (uc *OrderUseCase) Replace(ctx context.Context, id string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	userID := in.UserID
	return uc.update(ctx, id, &userID, in.ProductIDs)
}

// Patch aplica userId y/o productIds; el total se recalcula si cambian los productos.
func (uc *OrderUseCase) Patch(ctx context.Context, id string, in dto.PatchOrderRequest) (*dto.OrderResponse, error) {
	if in.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	return uc.update(ctx, id, in.UserID, in.ProductIDs)
}

// Delete borra líneas y cabecera en la misma transacción; devuelve el pedido borrado.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) (*dto.OrderResponse, error) {
	var deleted *entity.Order
	err := uc.tx.RunOrder(ctx, func(orders repository.OrderRepository, _ repository.ProductRepository) error {
		var err error
		deleted, err = orders.Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(deleted), nil
}

// Receipt genera el comprobante PDF del pedido.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateOrderReceipt(ctx, order)
}

func (uc *OrderUseCase) get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *OrderUseCase) update(ctx context.Context, id string, userID *string, productIDs []string) (*dto.OrderResponse, error) {
	var updated *entity.Order
	err := uc.tx.RunOrder(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		order, err := orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if userID != nil {
			order.UserID = *userID
		}
		if productIDs != nil {
			items, err := resolveItems(ctx, products, productIDs)
			if err != nil {
				return err
			}
			if err := orders.ReplaceItems(ctx, order.ID, items); err != nil {
				return err
			}
			order.Items = items
			order.Total = entity.OrderTotal(items)
		}
		order.UpdatedAt = timestamp()
		if err := orders.Update(ctx, order); err != nil {
			return err
		}
		updated, err = orders.GetByID(ctx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// resolveItems deduplica ids (conservando el orden) y exige que todos existan.
func resolveItems(ctx context.Context, products repository.ProductRepository, ids []string) ([]entity.OrderItem, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	found, err := products.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(found) != len(unique) {
		return nil, domain.ErrInvalidReference
	}
	byID := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	ordered := make([]*entity.Product, 0, len(unique))
	for _, id := range unique {
		p, ok := byID[id]
		if !ok {
			return nil, domain.ErrInvalidReference
		}
		ordered = append(ordered, p)
	}
	return entity.NewOrderItems(ordered), nil
}
