// Package report turns extracted roster and pairing records into summary
// statistics, distributions, buy-up splits, and rendered PDF reports.
package report

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// ErrEmptyDataset is returned when a report is requested over zero records.
var ErrEmptyDataset = errors.New("report: dataset is empty")

// Summary holds descriptive statistics over one numeric field. Valid is
// false when the input was empty; renderers print N/A for every value then.
type Summary struct {
	Field  string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
	Valid  bool
}

// Summarize computes descriptive statistics over values. An empty slice
// yields an invalid summary rather than an error: one empty field must not
// sink a report that has other populated fields.
func Summarize(field string, values []float64) Summary {
	s := Summary{Field: field, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	data := stats.Float64Data(values)
	var err error
	if s.Min, err = data.Min(); err != nil {
		return s
	}
	if s.Max, err = data.Max(); err != nil {
		return s
	}
	if s.Mean, err = data.Mean(); err != nil {
		return s
	}
	if s.Median, err = data.Median(); err != nil {
		return s
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s
	}
	s.Valid = true
	return s
}
