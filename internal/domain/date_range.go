package domain

import (
	"iter"
	"time"

	"github.com/DRSN-tech/pricing-backend/pkg/e"
)

// DateLayout — формат календарной даты во внешних интерфейсах.
const DateLayout = "2006-01-02"

// DateRange — включительный диапазон календарных дат [Start, End].
// Инвариант: Start <= End, обе даты нормализованы до полуночи UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange нормализует границы и проверяет порядок дат.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if end.Before(start) {
		return DateRange{}, e.ErrInvalidDateOrder
	}

	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange разбирает границы диапазона из строк формата YYYY-MM-DD.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.ParseInLocation(DateLayout, startStr, time.UTC)
	if err != nil {
		return DateRange{}, e.ErrInvalidDateFormat
	}

	end, err := time.ParseInLocation(DateLayout, endStr, time.UTC)
	if err != nil {
		return DateRange{}, e.ErrInvalidDateFormat
	}

	return NewDateRange(start, end)
}

// Days возвращает конечный итератор по всем дням диапазона, включая обе границы.
// Итератор можно обходить многократно.
func (r DateRange) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for day := r.Start; !day.After(r.End); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}

// Len возвращает количество дней в диапазоне.
func (r DateRange) Len() int {
	return int(r.End.Sub(r.Start)/(24*time.Hour)) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
