package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/application/validation"
	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/testutil/memstore"
)

func newProduct(name string, price int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{Name: name, About: "acerca de " + name, Price: decimal.NewFromInt(price)}
}

func TestProductUseCase_CreateYGet(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	cat, err := usecase.NewCategoryUseCase(store.Categories()).Create(ctx, dto.CreateCategoryRequest{Name: "Oficina"})
	require.NoError(t, err)

	uc := usecase.NewProductUseCase(store.Products())
	in := newProduct("Lápiz", 10)
	in.CategoryIDs = []string{cat.ID}
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.About, got.About)
	assert.True(t, created.Price.Equal(got.Price))
	assert.Equal(t, []string{cat.ID}, got.CategoryIDs)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Oficina", got.Categories[0].Name)
}

func TestProductUseCase_CategoriasSinDuplicadosYOrdenadas(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	cats := usecase.NewCategoryUseCase(store.Categories())
	a, err := cats.Create(ctx, dto.CreateCategoryRequest{Name: "a"})
	require.NoError(t, err)
	b, err := cats.Create(ctx, dto.CreateCategoryRequest{Name: "b"})
	require.NoError(t, err)
	want := []string{a.ID, b.ID}
	if b.ID < a.ID {
		want = []string{b.ID, a.ID}
	}

	uc := usecase.NewProductUseCase(store.Products())
	in := newProduct("Lápiz", 10)
	in.CategoryIDs = []string{want[1], want[0], want[1]}
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, want, created.CategoryIDs)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.CategoryIDs, got.CategoryIDs)

	replaced, err := uc.Replace(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, want, replaced.CategoryIDs)
}

func TestProductUseCase_CategoriaInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(memstore.New().Products())
	in := newProduct("Lápiz", 10)
	in.CategoryIDs = []string{"2b0f6c44-0a4e-4c7f-a3f4-1f1de0f0a0aa"}
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestProductUseCase_ListFiltros(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memstore.New().Products())
	for _, in := range []dto.CreateProductRequest{newProduct("Lápiz rojo", 10), newProduct("Lápiz azul", 30), newProduct("Borrador", 5)} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, dto.ProductQuery{Name: "LÁPIZ"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.List(ctx, dto.ProductQuery{Name: "lápiz", Price: "10"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lápiz rojo", list[0].Name)

	list, err = uc.List(ctx, dto.ProductQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestProductUseCase_ListPrecioNoNumerico(t *testing.T) {
	uc := usecase.NewProductUseCase(memstore.New().Products())
	_, err := uc.List(context.Background(), dto.ProductQuery{Price: "barato"})
	var v validation.Violations
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "price", v[0].Field)
}

func TestProductUseCase_PatchVacio(t *testing.T) {
	uc := usecase.NewProductUseCase(memstore.New().Products())
	_, err := uc.Patch(context.Background(), "cualquiera", dto.PatchProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestProductUseCase_PatchParcial(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memstore.New().Products())
	created, err := uc.Create(ctx, newProduct("Lápiz", 10))
	require.NoError(t, err)

	price := decimal.NewFromInt(12)
	patched, err := uc.Patch(ctx, created.ID, dto.PatchProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Lápiz", patched.Name)
	assert.True(t, price.Equal(patched.Price))
}

func TestProductUseCase_ReplaceInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(memstore.New().Products())
	_, err := uc.Replace(context.Background(), "2b0f6c44-0a4e-4c7f-a3f4-1f1de0f0a0aa", newProduct("Lápiz", 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memstore.New().Products())
	created, err := uc.Create(ctx, newProduct("Lápiz", 10))
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_IDMalFormado(t *testing.T) {
	uc := usecase.NewProductUseCase(memstore.New().Products())
	_, err := uc.GetByID(context.Background(), "123")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
