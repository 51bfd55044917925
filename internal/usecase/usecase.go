package usecase

import (
	"context"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PriceUC interface {
	SetPriceForPeriod(ctx context.Context, req *SetPriceReq) (*OutboxEvent, error)
	GetAveragePriceForPeriod(ctx context.Context, req *AveragePriceReq) (*decimal.Decimal, error)
}

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	GetProductInfo(ctx context.Context, id uuid.UUID) (*ProductInfo, error)
	ListProducts(ctx context.Context) ([]ProductInfo, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id uuid.UUID) error
}

type CategoryUC interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
