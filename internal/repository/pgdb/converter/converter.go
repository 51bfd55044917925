//go:generate goverter gen github.com/DRSN-tech/pricing-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/google/uuid"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertUUID
// goverter:extend ConvertPointerUUID
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertUUID
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []*CategoryModel) []*domain.Category
}

// PriceRecordConverter преобразует сущности PriceRecord между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertUUID
type PriceRecordConverter interface {
	ToModel(entity *domain.PriceRecord) *PriceRecordModel
	ToEntity(model *PriceRecordModel) *domain.PriceRecord
	ToArrEntity(models []*PriceRecordModel) []*domain.PriceRecord
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertUUID
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertUUID(id uuid.UUID) uuid.UUID {
	return id
}

func ConvertPointerUUID(id *uuid.UUID) *uuid.UUID {
	return id
}

func ConvertOutboxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
