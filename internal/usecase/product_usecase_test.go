package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	category := &domain.Category{ID: uuid.New(), Name: "Electronics"}
	productRepo := newFakeProductRepo()
	uc := NewProductUC(productRepo, newFakeCategoryRepo(category), noopLogger{}, newFakeCacheRepo())

	t.Run("with category", func(t *testing.T) {
		product, err := uc.CreateProduct(context.Background(), &CreateProductReq{
			Name:       "Laptop",
			CategoryID: &category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Laptop", product.Name)
		require.NotNil(t, product.CategoryID)
		assert.Equal(t, category.ID, *product.CategoryID)
	})

	t.Run("without category", func(t *testing.T) {
		product, err := uc.CreateProduct(context.Background(), &CreateProductReq{Name: "Cable"})
		require.NoError(t, err)
		assert.Nil(t, product.CategoryID)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := uc.CreateProduct(context.Background(), &CreateProductReq{Name: "   "})
		assert.ErrorIs(t, err, e.ErrProductNameRequired)
	})

	t.Run("unknown category", func(t *testing.T) {
		unknown := uuid.New()
		_, err := uc.CreateProduct(context.Background(), &CreateProductReq{
			Name:       "Laptop",
			CategoryID: &unknown,
		})
		assert.ErrorIs(t, err, e.ErrCategoryNotFound)
	})
}

func TestGetProductInfo(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		id := uuid.New()
		cache := newFakeCacheRepo()
		require.NoError(t, cache.SetProduct(context.Background(), NewProductInfo(id, "Cached", nil)))

		productRepo := newFakeProductRepo()
		productRepo.infoErr = assert.AnError // попадание в репозиторий провалит тест

		uc := NewProductUC(productRepo, newFakeCategoryRepo(), noopLogger{}, cache)

		info, err := uc.GetProductInfo(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Cached", info.Name)
	})

	t.Run("cache miss reads repository and backfills cache", func(t *testing.T) {
		id := uuid.New()
		productRepo := newFakeProductRepo()
		productRepo.infos[id] = NewProductInfo(id, "Fresh", nil)
		cache := newFakeCacheRepo()

		uc := NewProductUC(productRepo, newFakeCategoryRepo(), noopLogger{}, cache)

		info, err := uc.GetProductInfo(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Fresh", info.Name)

		require.Eventually(t, func() bool {
			cached, _ := cache.GetProduct(context.Background(), id)
			return cached != nil
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewProductUC(newFakeProductRepo(), newFakeCategoryRepo(), noopLogger{}, newFakeCacheRepo())
		_, err := uc.GetProductInfo(context.Background(), uuid.New())
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestUpdateProduct(t *testing.T) {
	product := &domain.Product{ID: uuid.New(), Name: "Old name"}
	cache := newFakeCacheRepo()
	uc := NewProductUC(newFakeProductRepo(product), newFakeCategoryRepo(), noopLogger{}, cache)

	t.Run("no fields", func(t *testing.T) {
		_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{ID: product.ID})
		assert.ErrorIs(t, err, e.ErrMissingFields)
	})

	t.Run("renames and invalidates cache", func(t *testing.T) {
		name := "New name"
		updated, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{ID: product.ID, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New name", updated.Name)
		assert.Contains(t, cache.deleted, product.ID)
	})
}

func TestArchiveProduct(t *testing.T) {
	product := &domain.Product{ID: uuid.New(), Name: "Smartphone"}
	productRepo := newFakeProductRepo(product)
	cache := newFakeCacheRepo()
	uc := NewProductUC(productRepo, newFakeCategoryRepo(), noopLogger{}, cache)

	require.NoError(t, uc.ArchiveProduct(context.Background(), product.ID))
	assert.True(t, product.IsArchived)
	assert.Contains(t, cache.deleted, product.ID)

	// повторная архивация — продукт уже не активен
	err := uc.ArchiveProduct(context.Background(), product.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}
