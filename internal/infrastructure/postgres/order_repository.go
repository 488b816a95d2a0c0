package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id::text, user_id::text, total, created_at, updated_at`

// Create persiste la cabecera y las líneas del pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if err := checkID(order.UserID); err != nil {
		return err
	}
	order.ID = uuid.New().String()
	query := `
		INSERT INTO orders (id, user_id, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, order.ID, order.UserID, order.Total, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// GetByID devuelve el pedido con líneas, usuario y productos.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.enrich(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// List devuelve todos los pedidos enriquecidos, más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	for _, o := range list {
		if err := r.enrich(ctx, o); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update sobrescribe user_id, total y updated_at.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if err := checkID(order.UserID); err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx,
		`UPDATE orders SET user_id = $2, total = $3, updated_at = $4 WHERE id = $1`,
		order.ID, order.UserID, order.Total, order.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceItems borra las líneas del pedido e inserta las nuevas.
func (r *OrderRepo) ReplaceItems(ctx context.Context, orderID string, items []entity.OrderItem) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return r.insertItems(ctx, orderID, items)
}

// Delete borra líneas y cabecera; devuelve el pedido tal como estaba.
func (r *OrderRepo) Delete(ctx context.Context, id string) (*entity.Order, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) insertItems(ctx context.Context, orderID string, items []entity.OrderItem) error {
	for _, it := range items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, unit_price) VALUES ($1, $2, $3)`,
			orderID, it.ProductID, it.UnitPrice,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidReference
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// enrich carga líneas, productos (con categorías) y usuario.
func (r *OrderRepo) enrich(ctx context.Context, o *entity.Order) error {
	rows, err := r.q.Query(ctx,
		`SELECT product_id::text, unit_price FROM order_items WHERE order_id = $1 ORDER BY position`, o.ID)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	o.Items = nil
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ProductID, &it.UnitPrice); err != nil {
			rows.Close()
			return fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list order items: %w", err)
	}

	o.Products = nil
	for _, it := range o.Items {
		p, err := getProduct(ctx, r.q, it.ProductID)
		if err != nil {
			return err
		}
		if p != nil {
			o.Products = append(o.Products, p)
		}
	}

	user, err := NewUserRepository(r.q).GetByID(ctx, o.UserID)
	if err != nil {
		return err
	}
	o.User = user
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return &o, nil
}
