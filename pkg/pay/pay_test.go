package pay

import (
	"testing"

	money "github.com/Rhymond/go-money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	t.Run("accepts positive rate", func(t *testing.T) {
		r, err := NewRate(9500, "USD")
		require.NoError(t, err)
		assert.Equal(t, "USD", r.Currency())
		assert.False(t, r.IsZero())
	})

	t.Run("rejects zero rate", func(t *testing.T) {
		_, err := NewRate(0, "USD")
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		_, err := NewRate(9500, "XXX-NOT-A-CURRENCY")
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}

func TestRate_ForHours(t *testing.T) {
	r := MustRate(9500, "USD") // $95.00/hr

	tests := []struct {
		name     string
		hours    float64
		expected int64
	}{
		{"whole hours", 10, 95000},
		{"tenth of an hour", 0.1, 950},
		{"fractional rounding", 1.33, 12635},
		{"zero hours", 0, 0},
		{"negative hours clamp to zero", -5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ForHours(tc.hours)
			assert.Equal(t, tc.expected, got.Amount())
			assert.Equal(t, "USD", got.Currency().Code)
		})
	}
}

func TestRate_BuyUpShortfall(t *testing.T) {
	r := MustRate(10000, "USD") // $100.00/hr keeps the math readable

	t.Run("credit below threshold owes the difference", func(t *testing.T) {
		got := r.BuyUpShortfall(50.0, 75.0)
		assert.Equal(t, int64(250000), got.Amount()) // 25 hours
	})

	t.Run("credit at threshold owes nothing", func(t *testing.T) {
		assert.True(t, r.BuyUpShortfall(75.0, 75.0).IsZero())
	})

	t.Run("credit above threshold owes nothing", func(t *testing.T) {
		assert.True(t, r.BuyUpShortfall(80.5, 75.0).IsZero())
	})
}

func TestSum(t *testing.T) {
	t.Run("sums same-currency values", func(t *testing.T) {
		total, err := Sum(money.New(100, "USD"), nil, money.New(250, "USD"))
		require.NoError(t, err)
		assert.Equal(t, int64(350), total.Amount())
	})

	t.Run("mismatched currencies error", func(t *testing.T) {
		_, err := Sum(money.New(100, "USD"), money.New(100, "EUR"))
		assert.Error(t, err)
	})

	t.Run("empty input is zero", func(t *testing.T) {
		total, err := Sum()
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}
