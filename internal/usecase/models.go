package usecase

import (
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/google/uuid"
)

// PRICE USECASE

// SetPriceReq — запрос на установку цены на каждый день диапазона.
type SetPriceReq struct {
	ProductID  uuid.UUID
	Range      domain.DateRange
	PriceCents int64
}

// AveragePriceReq — запрос средней цены за диапазон.
type AveragePriceReq struct {
	ProductID uuid.UUID
	Range     domain.DateRange
}

// PriceRangeAssignedPayload — полезная нагрузка события установки цены на диапазон.
type PriceRangeAssignedPayload struct {
	EventID    string `json:"event_id"`
	ProductID  string `json:"product_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PriceCents int64  `json:"price_cents"`
	AssignedAt int64  `json:"assigned_at"`
}

// PRODUCT USECASE

// CreateProductReq — запрос на создание продукта.
type CreateProductReq struct {
	Name       string
	CategoryID *uuid.UUID
}

// UpdateProductReq — частичное обновление продукта; nil-поля не меняются.
type UpdateProductReq struct {
	ID         uuid.UUID
	Name       *string
	CategoryID *uuid.UUID
}

// ProductInfo — DTO с информацией о продукте для внешнего использования.
type ProductInfo struct {
	ID           uuid.UUID
	Name         string
	CategoryName *string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const PriceRangeAssigned OutboxEventType = "price_range_assigned"

// OutboxEvent — запись транзакционного outbox для публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   uuid.UUID
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	ProductID uuid.UUID
	Payload   []byte
}

// MAPPERS

func NewSetPriceReq(productID uuid.UUID, rng domain.DateRange, priceCents int64) *SetPriceReq {
	return &SetPriceReq{
		ProductID:  productID,
		Range:      rng,
		PriceCents: priceCents,
	}
}

func NewAveragePriceReq(productID uuid.UUID, rng domain.DateRange) *AveragePriceReq {
	return &AveragePriceReq{
		ProductID: productID,
		Range:     rng,
	}
}

func NewProductInfo(id uuid.UUID, name string, categoryName *string) *ProductInfo {
	return &ProductInfo{
		ID:           id,
		Name:         name,
		CategoryName: categoryName,
	}
}

func NewWriteRawMessageReq(productID uuid.UUID, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}
