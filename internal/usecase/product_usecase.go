package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"github.com/google/uuid"
)

// ProductUseCase реализует бизнес-логику управления продуктами каталога.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	logger       logger.Logger
	cacheRepo    CacheRepository
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	logger logger.Logger,
	cacheRepo CacheRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
		cacheRepo:    cacheRepo,
	}
}

// CreateProduct создаёт продукт, проверяя существование категории, если она задана.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	if req.CategoryID != nil {
		if _, err := p.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	product, err := p.productRepo.Create(ctx, domain.NewProduct(req.Name, req.CategoryID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// GetProductInfo возвращает информацию о продукте, используя кэш сквозным чтением.
// Ошибки кэша деградируют до чтения из БД.
func (p *ProductUseCase) GetProductInfo(ctx context.Context, id uuid.UUID) (*ProductInfo, error) {
	const op = "ProductUseCase.GetProductInfo"

	if info, err := p.cacheRepo.GetProduct(ctx, id); err == nil && info != nil {
		return info, nil
	}

	info, err := p.productRepo.GetProductInfo(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление продукта в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProduct(bgCtx, info); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return info, nil
}

// ListProducts возвращает все неархивированные продукты.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// UpdateProduct частично обновляет продукт и инвалидирует его кэш.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	if req.Name == nil && req.CategoryID == nil {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	if req.CategoryID != nil {
		if _, err := p.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	product, err := p.productRepo.Update(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op, req.ID)
	return product, nil
}

// ArchiveProduct мягко удаляет продукт; записи цен сохраняются.
func (p *ProductUseCase) ArchiveProduct(ctx context.Context, id uuid.UUID) error {
	const op = "ProductUseCase.ArchiveProduct"

	if err := p.productRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op, id)
	return nil
}

func (p *ProductUseCase) invalidateCache(ctx context.Context, op string, id uuid.UUID) {
	if err := p.cacheRepo.DeleteProducts(ctx, []uuid.UUID{id}); err != nil {
		p.logger.Warnf("Failed to delete product from cache: %v", e.Wrap(op, err))
	}
}
