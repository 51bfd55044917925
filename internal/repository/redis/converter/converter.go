//go:generate goverter gen github.com/DRSN-tech/pricing-backend/internal/repository/redis/converter
package converter

import (
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/google/uuid"
)

// ProductInfoConverter преобразует DTO продукта между usecase и моделью Redis.
// goverter:converter
// goverter:extend ConvertUUID
// goverter:extend ConvertPointerString
type ProductInfoConverter interface {
	ToRedisModel(info *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
}

func ConvertUUID(id uuid.UUID) uuid.UUID {
	return id
}

func ConvertPointerString(s *string) *string {
	return s
}
