package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		s := Summarize("credit hours", []float64{75.5, 180.0, 50.0})
		assert.True(t, s.Valid)
		assert.Equal(t, 3, s.Count)
		assert.InDelta(t, 50.0, s.Min, 1e-9)
		assert.InDelta(t, 180.0, s.Max, 1e-9)
		assert.InDelta(t, 101.8333, s.Mean, 1e-3)
		assert.InDelta(t, 75.5, s.Median, 1e-9)
		assert.Greater(t, s.StdDev, 0.0)
	})

	t.Run("single value", func(t *testing.T) {
		s := Summarize("block hours", []float64{10.0})
		assert.True(t, s.Valid)
		assert.InDelta(t, 10.0, s.Min, 1e-9)
		assert.InDelta(t, 10.0, s.Max, 1e-9)
		assert.InDelta(t, 10.0, s.Median, 1e-9)
		assert.InDelta(t, 0.0, s.StdDev, 1e-9)
	})

	t.Run("empty column is invalid, not zero", func(t *testing.T) {
		s := Summarize("days off", nil)
		assert.False(t, s.Valid)
		assert.Equal(t, 0, s.Count)
	})
}
