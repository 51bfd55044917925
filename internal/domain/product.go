package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product описывает продукт каталога.
// Удаление продукта архивирует запись, записи цен при этом сохраняются.
type Product struct {
	ID         uuid.UUID
	Name       string
	CategoryID *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewProduct(name string, categoryID *uuid.UUID) *Product {
	return &Product{
		Name:       name,
		CategoryID: categoryID,
	}
}
