package memstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository.
type ProductRepository struct{ s *Store }

func (r *ProductRepository) checkCategories(ids []string) error {
	for _, id := range ids {
		if err := parseID(id); err != nil {
			return err
		}
		if _, ok := r.s.categories.get(id); !ok {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

func (r *ProductRepository) enrich(p *entity.Product) *entity.Product {
	out := copyProduct(p)
	for _, id := range p.CategoryIDs {
		if c, ok := r.s.categories.get(id); ok {
			out.Categories = append(out.Categories, *c)
		}
	}
	return out
}

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkCategories(p.CategoryIDs); err != nil {
		return err
	}
	p.ID = uuid.New().String()
	r.s.products.put(p.ID, copyProduct(p))
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products.get(id)
	if !ok {
		return nil, nil
	}
	return r.enrich(p), nil
}

func (r *ProductRepository) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Product
	for _, id := range ids {
		if err := parseID(id); err != nil {
			return nil, err
		}
		if p, ok := r.s.products.get(id); ok {
			out = append(out, copyProduct(p))
		}
	}
	return out, nil
}

func (r *ProductRepository) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Product
	for _, p := range r.s.products.all() {
		if f.Name != "" && !containsFold(p.Name, f.Name) {
			continue
		}
		if f.About != "" && !containsFold(p.About, f.About) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, r.enrich(p))
	}
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	if err := parseID(p.ID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products.get(p.ID); !ok {
		return domain.ErrNotFound
	}
	if err := r.checkCategories(p.CategoryIDs); err != nil {
		return err
	}
	r.s.products.put(p.ID, copyProduct(p))
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) (*entity.Product, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products.get(id)
	if !ok {
		return nil, nil
	}
	for _, o := range r.s.orders.all() {
		for _, it := range o.Items {
			if it.ProductID == id {
				return nil, domain.ErrConflict
			}
		}
	}
	r.s.products.remove(id)
	return copyProduct(p), nil
}

// CategoryRepository implementa repository.CategoryRepository.
type CategoryRepository struct{ s *Store }

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = uuid.New().String()
	cp := *c
	r.s.categories.put(c.ID, &cp)
	return nil
}

func (r *CategoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Category
	for _, c := range r.s.categories.all() {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// UserRepository implementa repository.UserRepository.
type UserRepository struct{ s *Store }

func (r *UserRepository) duplicated(u *entity.User) bool {
	for _, other := range r.s.users.all() {
		if other.ID == u.ID {
			continue
		}
		if other.Username == u.Username || other.Email == u.Email {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.duplicated(u) {
		return domain.ErrDuplicate
	}
	u.ID = uuid.New().String()
	r.s.users.put(u.ID, copyUser(u))
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users.get(id)
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users.all() {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for _, u := range r.s.users.all() {
		if f.Username != "" && !containsFold(u.Username, f.Username) {
			continue
		}
		if f.Email != "" && !containsFold(u.Email, f.Email) {
			continue
		}
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	if err := parseID(u.ID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users.get(u.ID); !ok {
		return domain.ErrNotFound
	}
	if r.duplicated(u) {
		return domain.ErrDuplicate
	}
	r.s.users.put(u.ID, copyUser(u))
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (*entity.User, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users.get(id)
	if !ok {
		return nil, nil
	}
	for _, o := range r.s.orders.all() {
		if o.UserID == id {
			return nil, domain.ErrConflict
		}
	}
	r.s.users.remove(id)
	return copyUser(u), nil
}

// OrderRepository implementa repository.OrderRepository.
type OrderRepository struct{ s *Store }

func (r *OrderRepository) enrich(o *entity.Order) *entity.Order {
	out := copyOrder(o)
	if u, ok := r.s.users.get(o.UserID); ok {
		out.User = copyUser(u)
	}
	for _, it := range o.Items {
		if p, ok := r.s.products.get(it.ProductID); ok {
			out.Products = append(out.Products, copyProduct(p))
		}
	}
	return out
}

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users.get(o.UserID); !ok {
		return domain.ErrInvalidReference
	}
	o.ID = uuid.New().String()
	r.s.orders.put(o.ID, copyOrder(o))
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders.get(id)
	if !ok {
		return nil, nil
	}
	return r.enrich(o), nil
}

func (r *OrderRepository) List(_ context.Context) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Order
	for _, o := range r.s.orders.all() {
		out = append(out, r.enrich(o))
	}
	return out, nil
}

func (r *OrderRepository) Update(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.orders.get(o.ID)
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.users.get(o.UserID); !ok {
		return domain.ErrInvalidReference
	}
	cp := copyOrder(o)
	cp.Items = current.Items
	r.s.orders.put(o.ID, cp)
	return nil
}

func (r *OrderRepository) ReplaceItems(_ context.Context, orderID string, items []entity.OrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders.get(orderID)
	if !ok {
		return domain.ErrNotFound
	}
	o.Items = append([]entity.OrderItem(nil), items...)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id string) (*entity.Order, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders.get(id)
	if !ok {
		return nil, nil
	}
	r.s.orders.remove(id)
	return copyOrder(o), nil
}

// TxRunner implementa repository.OrderTxRunner: si fn falla restaura pedidos y líneas.
type TxRunner struct{ s *Store }

func (t *TxRunner) RunOrder(ctx context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository) error) error {
	t.s.mu.RLock()
	snapshot := t.s.orders.clone(copyOrder)
	t.s.mu.RUnlock()

	if err := fn(t.s.Orders(), t.s.Products()); err != nil {
		t.s.mu.Lock()
		t.s.orders = snapshot
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// EventRepository implementa repository.EventRepository.
type EventRepository struct{ s *Store }

func (r *EventRepository) Insert(_ context.Context, e *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = uuid.New().String()
	cp := *e
	r.s.events = append(r.s.events, &cp)
	return nil
}

func (r *EventRepository) List(_ context.Context, kind entity.EventKind, limit int) ([]*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Event
	for _, e := range r.s.events {
		if e.Kind == kind {
			cp := *e
			out = append(out, &cp)
		}
	}
	sortEventsDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
