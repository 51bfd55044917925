package domain

import (
	"testing"
	"time"

	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		rng, err := NewDateRange(date(2025, 1, 1), date(2025, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, date(2025, 1, 1), rng.Start)
		assert.Equal(t, date(2025, 1, 10), rng.End)
	})

	t.Run("single day", func(t *testing.T) {
		rng, err := NewDateRange(date(2025, 3, 15), date(2025, 3, 15))
		require.NoError(t, err)
		assert.Equal(t, 1, rng.Len())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange(date(2025, 1, 10), date(2025, 1, 1))
		assert.ErrorIs(t, err, e.ErrInvalidDateOrder)
	})

	t.Run("normalizes time and zone to UTC midnight", func(t *testing.T) {
		msk := time.FixedZone("MSK", 3*60*60)
		start := time.Date(2025, 1, 1, 23, 59, 58, 0, msk)
		end := time.Date(2025, 1, 2, 1, 2, 3, 0, msk)

		rng, err := NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 1, 1), rng.Start)
		assert.Equal(t, date(2025, 1, 2), rng.End)
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rng, err := ParseDateRange("2025-01-01", "2025-02-01")
		require.NoError(t, err)
		assert.Equal(t, date(2025, 1, 1), rng.Start)
		assert.Equal(t, date(2025, 2, 1), rng.End)
	})

	t.Run("invalid format", func(t *testing.T) {
		badInputs := [][2]string{
			{"01-01-2025", "2025-01-02"},
			{"2025-01-01", "2025/01/02"},
			{"2025-13-01", "2025-12-02"},
			{"2025-01-32", "2025-02-01"},
			{"yesterday", "tomorrow"},
		}

		for _, in := range badInputs {
			_, err := ParseDateRange(in[0], in[1])
			assert.ErrorIs(t, err, e.ErrInvalidDateFormat, "start=%q end=%q", in[0], in[1])
		}
	})

	t.Run("reversed dates", func(t *testing.T) {
		_, err := ParseDateRange("2025-02-01", "2025-01-01")
		assert.ErrorIs(t, err, e.ErrInvalidDateOrder)
	})
}

func TestDateRangeDays(t *testing.T) {
	rng, err := NewDateRange(date(2025, 1, 30), date(2025, 2, 2))
	require.NoError(t, err)

	var days []time.Time
	for day := range rng.Days() {
		days = append(days, day)
	}

	require.Len(t, days, 4)
	assert.Equal(t, date(2025, 1, 30), days[0])
	assert.Equal(t, date(2025, 1, 31), days[1])
	assert.Equal(t, date(2025, 2, 1), days[2])
	assert.Equal(t, date(2025, 2, 2), days[3])

	t.Run("iterator is restartable", func(t *testing.T) {
		count := 0
		for range rng.Days() {
			count++
		}
		assert.Equal(t, 4, count)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		count := 0
		for range rng.Days() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})
}

func TestDateRangeLen(t *testing.T) {
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{date(2025, 1, 1), date(2025, 1, 1), 1},
		{date(2025, 1, 1), date(2025, 1, 31), 31},
		{date(2024, 2, 28), date(2024, 3, 1), 3}, // високосный год
		{date(2025, 1, 1), date(2025, 12, 31), 365},
	}

	for _, tc := range cases {
		rng, err := NewDateRange(tc.start, tc.end)
		require.NoError(t, err)
		assert.Equal(t, tc.want, rng.Len())
	}
}
