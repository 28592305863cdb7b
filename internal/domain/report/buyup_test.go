package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
	"github.com/FACorreiaa/bidline-insights/pkg/pay"
)

func rosterFixture() []extract.BidLine {
	return []extract.BidLine{
		{Number: 1, CreditHours: 75.5, BlockHours: 78.2, DaysOff: 5, DutyDays: 13},
		{Number: 2, CreditHours: 180.0, BlockHours: 185.0, DaysOff: 20, DutyDays: 15},
		{Number: 3, CreditHours: 50.0, BlockHours: 52.0, DaysOff: 6, DutyDays: 25},
	}
}

func TestSplitBuyUp(t *testing.T) {
	t.Run("threshold is strict", func(t *testing.T) {
		s, err := SplitBuyUp(rosterFixture(), 75.0, nil)
		require.NoError(t, err)

		// 75.5 is not below 75.0; only line 3 qualifies.
		require.Len(t, s.BuyUp, 1)
		assert.Equal(t, 3, s.BuyUp[0].Number)
		require.Len(t, s.Regular, 2)

		assert.Equal(t, len(s.BuyUp)+len(s.Regular), 3)
		assert.InDelta(t, 100.0, s.BuyUpPct+s.RegularPct, 1e-9)
		assert.Nil(t, s.EstimatedCost)
	})

	t.Run("shortfall priced at the hourly rate", func(t *testing.T) {
		rate := pay.MustRate(10000, "USD") // $100.00 per credit hour
		s, err := SplitBuyUp(rosterFixture(), 75.0, &rate)
		require.NoError(t, err)

		// Line 3 is 25 hours short: 25 * $100 = $2500.00.
		require.NotNil(t, s.EstimatedCost)
		assert.Equal(t, int64(250000), s.EstimatedCost.Amount())
	})

	t.Run("no buy-up lines cost zero", func(t *testing.T) {
		rate := pay.MustRate(10000, "USD")
		s, err := SplitBuyUp(rosterFixture(), 10.0, &rate)
		require.NoError(t, err)
		assert.Empty(t, s.BuyUp)
		require.NotNil(t, s.EstimatedCost)
		assert.True(t, s.EstimatedCost.IsZero())
	})

	t.Run("empty roster", func(t *testing.T) {
		s, err := SplitBuyUp(nil, 75.0, nil)
		require.NoError(t, err)
		assert.Empty(t, s.BuyUp)
		assert.Empty(t, s.Regular)
		assert.Zero(t, s.BuyUpPct)
	})
}
