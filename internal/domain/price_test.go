package domain

import (
	"testing"

	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	t.Run("valid prices", func(t *testing.T) {
		cases := []struct {
			in   string
			want int64
		}{
			{"599.99", 59999},
			{"600", 60000},
			{"0", 0},
			{"0.01", 1},
			{"99999.99", 9999999},
			{"1234.5", 123450},
		}

		for _, tc := range cases {
			got, err := ParsePriceToCents(tc.in)
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	})

	t.Run("invalid prices", func(t *testing.T) {
		cases := []struct {
			in      string
			wantErr error
		}{
			{"", e.ErrInvalidPrice},
			{"   ", e.ErrInvalidPrice},
			{"abc", e.ErrInvalidPrice},
			{"-1", e.ErrInvalidPrice},
			{"-0.01", e.ErrInvalidPrice},
			{"12.345", e.ErrPricePrecision},
			{"100000", e.ErrPricePrecision},
			{"100000.00", e.ErrPricePrecision},
		}

		for _, tc := range cases {
			_, err := ParsePriceToCents(tc.in)
			assert.ErrorIs(t, err, tc.wantErr, "input %q", tc.in)
		}
	})
}

func TestCentsToDecimal(t *testing.T) {
	assert.Equal(t, "599.99", CentsToDecimal(59999).StringFixed(2))
	assert.Equal(t, "0.00", CentsToDecimal(0).StringFixed(2))
	assert.Equal(t, "100.00", CentsToDecimal(10000).StringFixed(2))
}
