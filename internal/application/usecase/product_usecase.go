package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/validation"
	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Sirve igual a Postgres y a MongoDB.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create persiste un producto nuevo; el repositorio asigna el ID.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        in.Name,
		About:       in.About,
		Price:       in.Price,
		CategoryIDs: sortedIDs(in.CategoryIDs),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto enriquecido con sus categorías.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos filtrando por subcadena de name/about y precio máximo.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) ([]dto.ProductResponse, error) {
	filter := repository.ProductFilter{Name: q.Name, About: q.About}
	if q.Price != "" {
		maxPrice, err := decimal.NewFromString(q.Price)
		if err != nil {
			return nil, validation.Violations{{Field: "price", Rule: "number", Message: "debe ser un número"}}
		}
		filter.MaxPrice = &maxPrice
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Replace sobrescribe todos los campos mutables del producto.
func (uc *ProductUseCase) Replace(ctx context.Context, id string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		ID:          id,
		Name:        in.Name,
		About:       in.About,
		Price:       in.Price,
		CategoryIDs: sortedIDs(in.CategoryIDs),
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Patch aplica solo los campos informados.
func (uc *ProductUseCase) Patch(ctx context.Context, id string, in dto.PatchProductRequest) (*dto.ProductResponse, error) {
	if in.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.About != nil {
		product.About = *in.About
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CategoryIDs != nil {
		product.CategoryIDs = sortedIDs(in.CategoryIDs)
	}
	product.Categories = nil
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto y devuelve el registro borrado.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}
