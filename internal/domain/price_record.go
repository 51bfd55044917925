package domain

import (
	"time"

	"github.com/google/uuid"
)

// PriceRecord описывает цену продукта на один календарный день.
// Инвариант: не больше одной записи на пару (продукт, дата).
type PriceRecord struct {
	ID        int64
	ProductID uuid.UUID
	Date      time.Time
	Price     int64 // Цена хранится в копейках
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewPriceRecord(productID uuid.UUID, date time.Time, price int64) *PriceRecord {
	return &PriceRecord{
		ProductID: productID,
		Date:      date,
		Price:     price,
	}
}

// DateKey возвращает дату записи в формате YYYY-MM-DD для индексации по дням.
func (p *PriceRecord) DateKey() string {
	return p.Date.Format(DateLayout)
}
