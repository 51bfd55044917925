package domain

import (
	"strings"

	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Ограничения цены: не больше 7 значащих цифр, из них 2 после запятой.
const maxPriceUnits = 100_000

// ParsePriceToCents конвертирует строку вида "599.99" или "600" в копейки (int64).
func ParsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	if d.GreaterThanOrEqual(decimal.NewFromInt(maxPriceUnits)) {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// CentsToDecimal переводит копейки в decimal с двумя знаками после запятой.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).Round(2)
}
