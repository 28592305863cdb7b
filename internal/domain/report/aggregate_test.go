package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
)

func TestAggregateTrips(t *testing.T) {
	trips := []extract.Trip{
		{ID: "1001", EDW: true, TAFBHours: 72.0, DutyDays: 3, CreditHours: 20.5},
		{ID: "1002", EDW: false, TAFBHours: 12.5, DutyDays: 1, CreditHours: 6.0, HotStandby: true},
		{ID: "1003", EDW: true, TAFBHours: 48.0, DutyDays: 2, CreditHours: 15.0},
	}

	agg := AggregateTrips(trips)

	assert.Equal(t, 3, agg.Total)
	assert.Equal(t, 2, agg.EDW)
	assert.Equal(t, 1, agg.NonEDW)
	assert.Equal(t, agg.Total, agg.EDW+agg.NonEDW)
	assert.Equal(t, 1, agg.HotStandby)

	assert.InDelta(t, 66.667, agg.EDWTripPct, 1e-2)
	assert.InDelta(t, 120.0/132.5*100, agg.EDWTAFBPct, 1e-9)
	assert.InDelta(t, 5.0/6.0*100, agg.EDWDutyDayPct, 1e-9)

	assert.GreaterOrEqual(t, agg.EDWTAFBPct, 0.0)
	assert.LessOrEqual(t, agg.EDWTAFBPct, 100.0)

	assert.True(t, agg.Credit.Valid)
	assert.InDelta(t, 41.5, agg.TotalCreditHours, 1e-9)
	assert.InDelta(t, 132.5, agg.TotalTAFBHours, 1e-9)
	assert.Equal(t, 6, agg.TotalDutyDays)
}

func TestAggregateTrips_Empty(t *testing.T) {
	agg := AggregateTrips(nil)
	assert.Zero(t, agg.Total)
	assert.Zero(t, agg.EDWTripPct)
	assert.False(t, agg.Credit.Valid)
	assert.False(t, agg.TAFB.Valid)
}
