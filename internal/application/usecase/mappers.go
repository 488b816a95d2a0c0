package usecase

import (
	"sort"
	"time"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/domain/entity"
)

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		About:       p.About,
		Price:       p.Price,
		CategoryIDs: p.CategoryIDs,
	}
	if out.CategoryIDs == nil {
		out.CategoryIDs = []string{}
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	out := &dto.OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		Total:      o.Total,
		ProductIDs: o.ProductIDs(),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		User:       toUserResponse(o.User),
	}
	for _, p := range o.Products {
		out.Products = append(out.Products, *toProductResponse(p))
	}
	return out
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:        e.ID,
		Source:    e.Source,
		URL:       e.URL,
		Visitor:   e.Visitor,
		CreatedAt: e.CreatedAt,
		Meta:      e.Meta,
		Action:    e.Action,
		Goal:      e.Goal,
	}
}

// timestamp hora actual UTC con la precisión de TIMESTAMPTZ (microsegundos).
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// sortedIDs quita duplicados y ordena; nil se conserva (campo no informado).
func sortedIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
