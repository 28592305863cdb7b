package report

import (
	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
)

// TripAggregate summarizes a pairing set split by extended-duty-window
// classification. EDW plus NonEDW always equals Total.
type TripAggregate struct {
	Total  int
	EDW    int
	NonEDW int

	EDWTripPct    float64 // share of trips that are EDW
	EDWTAFBPct    float64 // share of TAFB hours spent on EDW trips
	EDWDutyDayPct float64 // share of duty days spent on EDW trips

	TotalTAFBHours   float64
	TotalDutyDays    int
	TotalCreditHours float64
	HotStandby       int

	Credit Summary
	TAFB   Summary
}

// AggregateTrips rolls a pairing set up into the EDW aggregate. Empty input
// yields a zero aggregate with invalid summaries.
func AggregateTrips(trips []extract.Trip) TripAggregate {
	agg := TripAggregate{Total: len(trips)}

	var edwTAFB, edwDutyDays float64
	credits := make([]float64, 0, len(trips))
	tafbs := make([]float64, 0, len(trips))

	for _, t := range trips {
		credits = append(credits, t.CreditHours)
		tafbs = append(tafbs, t.TAFBHours)
		agg.TotalTAFBHours += t.TAFBHours
		agg.TotalDutyDays += t.DutyDays
		agg.TotalCreditHours += t.CreditHours
		if t.HotStandby {
			agg.HotStandby++
		}
		if t.EDW {
			agg.EDW++
			edwTAFB += t.TAFBHours
			edwDutyDays += float64(t.DutyDays)
		}
	}
	agg.NonEDW = agg.Total - agg.EDW

	if agg.Total > 0 {
		agg.EDWTripPct = float64(agg.EDW) * 100 / float64(agg.Total)
	}
	if agg.TotalTAFBHours > 0 {
		agg.EDWTAFBPct = edwTAFB * 100 / agg.TotalTAFBHours
	}
	if agg.TotalDutyDays > 0 {
		agg.EDWDutyDayPct = edwDutyDays * 100 / float64(agg.TotalDutyDays)
	}

	agg.Credit = Summarize("credit hours", credits)
	agg.TAFB = Summarize("TAFB hours", tafbs)
	return agg
}
