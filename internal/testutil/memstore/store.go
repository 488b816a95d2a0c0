// Package memstore implementa los puertos de repositorio en memoria para tests
// de casos de uso y handlers. Reproduce los errores de dominio de los adaptadores
// reales (ids mal formados, referencias inexistentes, duplicados) y la precisión
// con la que Postgres guarda los datos: timestamps en microsegundos, precios con
// dos decimales y categorías sin duplicados ordenadas por id.
package memstore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
)

type table[T any] struct {
	ids  []string
	rows map[string]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) put(id string, v *T) {
	if _, ok := t.rows[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (*T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) remove(id string) {
	delete(t.rows, id)
	for i, it := range t.ids {
		if it == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			return
		}
	}
}

func (t *table[T]) all() []*T {
	out := make([]*T, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) clone(copyRow func(*T) *T) *table[T] {
	c := newTable[T]()
	for _, id := range t.ids {
		c.put(id, copyRow(t.rows[id]))
	}
	return c
}

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	products   *table[entity.Product]
	categories *table[entity.Category]
	users      *table[entity.User]
	orders     *table[entity.Order]
	events     []*entity.Event
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		products:   newTable[entity.Product](),
		categories: newTable[entity.Category](),
		users:      newTable[entity.User](),
		orders:     newTable[entity.Order](),
	}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Orders devuelve el repositorio de pedidos.
func (s *Store) Orders() *OrderRepository { return &OrderRepository{s: s} }

// TxRunner devuelve el runner transaccional de pedidos.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// Events devuelve el repositorio de eventos.
func (s *Store) Events() *EventRepository { return &EventRepository{s: s} }

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Price = p.Price.Round(2)
	cp.CategoryIDs = uniqueSorted(p.CategoryIDs)
	cp.Categories = nil
	return &cp
}

func copyUser(u *entity.User) *entity.User {
	cp := *u
	cp.CreatedAt = u.CreatedAt.Truncate(time.Microsecond)
	cp.UpdatedAt = u.UpdatedAt.Truncate(time.Microsecond)
	return &cp
}

func copyOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.CreatedAt = o.CreatedAt.Truncate(time.Microsecond)
	cp.UpdatedAt = o.UpdatedAt.Truncate(time.Microsecond)
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	cp.User = nil
	cp.Products = nil
	return &cp
}

func uniqueSorted(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func sortEventsDesc(events []*entity.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
}
