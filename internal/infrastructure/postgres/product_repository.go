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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Producto + categorías agregadas en arrays paralelos (id, name) ordenados por id.
const productSelect = `
	SELECT p.id::text, p.name, p.about, p.price,
	       COALESCE(array_agg(c.id::text ORDER BY c.id::text) FILTER (WHERE c.id IS NOT NULL), '{}'::text[]),
	       COALESCE(array_agg(c.name ORDER BY c.id::text) FILTER (WHERE c.id IS NOT NULL), '{}'::text[])
	FROM products p
	LEFT JOIN product_categories pc ON pc.product_id = p.id
	LEFT JOIN categories c ON c.id = pc.category_id`

// Create persiste el producto y sus categorías en una misma transacción.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	categoryIDs, err := canonicalIDs(product.CategoryIDs)
	if err != nil {
		return err
	}
	product.CategoryIDs = categoryIDs
	product.ID = uuid.New().String()
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO products (id, name, about, price) VALUES ($1, $2, $3, $4)`,
			product.ID, product.Name, product.About, product.Price,
		)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return insertProductCategories(ctx, tx, product.ID, product.CategoryIDs)
	})
}

// GetByID obtiene un producto enriquecido con sus categorías.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return getProduct(ctx, r.q, id)
}

// GetByIDs devuelve los productos existentes entre ids.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if err := checkIDs(ids); err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx,
		`SELECT id::text, name, about, price FROM products WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.About, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// List lista productos filtrados, enriquecidos con sus categorías.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	where, args, err := buildWhere(filter.Conditions(), productClauses)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, productSelect+where+` GROUP BY p.id ORDER BY p.name, p.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update sobrescribe name/about/price y reemplaza el conjunto de categorías.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := checkID(product.ID); err != nil {
		return err
	}
	categoryIDs, err := canonicalIDs(product.CategoryIDs)
	if err != nil {
		return err
	}
	product.CategoryIDs = categoryIDs
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET name = $2, about = $3, price = $4 WHERE id = $1`,
			product.ID, product.Name, product.About, product.Price,
		)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("delete product categories: %w", err)
		}
		return insertProductCategories(ctx, tx, product.ID, product.CategoryIDs)
	})
}

// Delete elimina el producto; domain.ErrConflict si algún pedido lo referencia.
func (r *ProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var deleted *entity.Product
	err := pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		p, err := getProduct(ctx, tx, id)
		if err != nil || p == nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("delete product: %w", err)
		}
		deleted = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func getProduct(ctx context.Context, q Querier, id string) (*entity.Product, error) {
	p, err := scanProduct(q.QueryRow(ctx, productSelect+` WHERE p.id = $1 GROUP BY p.id`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var names []string
	if err := row.Scan(&p.ID, &p.Name, &p.About, &p.Price, &p.CategoryIDs, &names); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	for i, id := range p.CategoryIDs {
		p.Categories = append(p.Categories, entity.Category{ID: id, Name: names[i]})
	}
	return &p, nil
}

// categoryIDs ya viene de canonicalIDs (sin duplicados).
func insertProductCategories(ctx context.Context, q Querier, productID string, categoryIDs []string) error {
	for _, categoryID := range categoryIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`,
			productID, categoryID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidReference
			}
			return fmt.Errorf("insert product category: %w", err)
		}
	}
	return nil
}
