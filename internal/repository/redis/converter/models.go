package converter

import "github.com/google/uuid"

// ProductInfoRedisModel — JSON-представление продукта в кэше Redis.
type ProductInfoRedisModel struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryName *string   `json:"category_name"`
}
