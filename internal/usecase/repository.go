package usecase

import (
	"context"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetProductInfo(ctx context.Context, id uuid.UUID) (*ProductInfo, error)
	ListActive(ctx context.Context) ([]ProductInfo, error)
	Update(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	Archive(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceRecordRepository — хранилище записей цен.
// Мутации и диапазонное чтение ассайнера выполняются в транзакции из контекста.
type PriceRecordRepository interface {
	GetByProductAndRange(ctx context.Context, productID uuid.UUID, rng domain.DateRange) ([]*domain.PriceRecord, error)
	BulkUpdatePrice(ctx context.Context, ids []int64, priceCents int64) error
	BulkInsert(ctx context.Context, records []*domain.PriceRecord) error
	AverageByRange(ctx context.Context, productID uuid.UUID, rng domain.DateRange) (*decimal.Decimal, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductInfo, error)
	SetProduct(ctx context.Context, info *ProductInfo) error
	DeleteProducts(ctx context.Context, ids []uuid.UUID) error
}
