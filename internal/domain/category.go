package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category описывает категорию продукта
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name string) *Category {
	return &Category{
		Name: name,
	}
}
