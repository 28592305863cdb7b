package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(Options{Title: "ANC B767 SEP 2026"})

	out, err := b.Build(rosterFixture(), Aux{})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestBuilder_Build_EmptyDataset(t *testing.T) {
	b := NewBuilder(Options{})
	_, err := b.Build(nil, Aux{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestBuilder_Build_WithAuxSections(t *testing.T) {
	b := NewBuilder(Options{
		Title:    "ANC B767 SEP 2026",
		Subtitle: "bid period 01SEP26 - 30SEP26",
		FilterGroups: []FilterGroup{
			{Name: "reserve only", Keep: func(l extract.BidLine) bool { return l.Reserve }},
		},
	})

	lines := append(rosterFixture(), extract.BidLine{
		Number: 4, CreditHours: 0, BlockHours: 0, DaysOff: 15, DutyDays: 15,
		Reserve: true, Seat: extract.SeatCaptain,
	})
	aux := Aux{
		PayPeriods: []PayPeriodStat{
			{Period: "SEP-A", Lines: 2, AvgCredit: 72.5, AvgBlock: 70.0},
			{Period: "SEP-B", Lines: 2, AvgCredit: 90.0, AvgBlock: 92.0},
		},
		Reserve: extract.BuildReserveInfo(lines),
	}

	out, err := b.Build(lines, aux)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestBuyUpRows(t *testing.T) {
	s, err := SplitBuyUp(rosterFixture(), 75.0, nil)
	require.NoError(t, err)

	rows := buyUpRows(s)
	require.Len(t, rows, 2)

	// Buy-up group is line 3 alone.
	assert.Equal(t, "buy-up", rows[0].Name)
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, "50.0", rows[0].AvgCredit)
	assert.Equal(t, "52.0", rows[0].AvgBlock)
	assert.Equal(t, "6.0", rows[0].AvgDaysOff)
	assert.Equal(t, "25.0", rows[0].AvgDutyDays)

	// Regular group averages lines 1 and 2.
	assert.Equal(t, "regular", rows[1].Name)
	assert.Equal(t, 2, rows[1].Count)
	assert.Equal(t, "127.8", rows[1].AvgCredit)
	assert.Equal(t, "131.6", rows[1].AvgBlock)
	assert.Equal(t, "12.5", rows[1].AvgDaysOff)
	assert.Equal(t, "14.0", rows[1].AvgDutyDays)

	assert.InDelta(t, 100.0, rows[0].Pct+rows[1].Pct, 1e-9)
}

func TestBuyUpRows_EmptyGroupShowsNA(t *testing.T) {
	s, err := SplitBuyUp(rosterFixture(), 10.0, nil)
	require.NoError(t, err)

	rows := buyUpRows(s)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Count)
	assert.Equal(t, "N/A", rows[0].AvgCredit)
	assert.Equal(t, "N/A", rows[0].AvgDutyDays)
}

func TestBuilder_DefaultsApplied(t *testing.T) {
	b := NewBuilder(Options{})
	assert.InDelta(t, DefaultBuyUpThreshold, b.opts.BuyUpThreshold, 1e-9)
	assert.InDelta(t, DefaultBucketWidth, b.opts.BucketWidth, 1e-9)
	assert.NotEmpty(t, b.opts.Title)
}

func TestRenderBarChart_EmptyDistributionSkips(t *testing.T) {
	png, err := RenderBarChart(Distribution{Field: "credit hours"}, "credit")
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestRenderBarChart(t *testing.T) {
	d := Distribute("credit hours", []float64{50, 52, 75.5, 78.2, 80}, 5.0)
	png, err := RenderBarChart(d, "credit hours distribution")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderBuyUpPie(t *testing.T) {
	t.Run("empty split skips", func(t *testing.T) {
		png, err := RenderBuyUpPie(BuyUpSplit{}, "buy-up")
		require.NoError(t, err)
		assert.Nil(t, png)
	})

	t.Run("renders png", func(t *testing.T) {
		s, err := SplitBuyUp(rosterFixture(), 75.0, nil)
		require.NoError(t, err)
		png, err := RenderBuyUpPie(s, "buy-up")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	})
}
