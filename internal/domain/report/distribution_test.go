package report

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribute(t *testing.T) {
	t.Run("five hour buckets over a roster", func(t *testing.T) {
		d := Distribute("credit hours", []float64{75.5, 78.2, 50.0, 52.0, 80.0}, 5.0)

		assert.Equal(t, 5, d.Total)
		assert.True(t, d.Contiguous())
		require.NotEmpty(t, d.Buckets)
		assert.InDelta(t, 50.0, d.Buckets[0].Lo, 1e-9)

		counted := 0
		for _, b := range d.Buckets {
			counted += b.Count
		}
		assert.Equal(t, d.Total, counted)
	})

	t.Run("lower bound inclusive, upper exclusive", func(t *testing.T) {
		d := Distribute("credit hours", []float64{50.0, 54.9, 55.0, 59.9}, 5.0)
		require.Len(t, d.Buckets, 2)
		assert.Equal(t, 2, d.Buckets[0].Count) // 50.0, 54.9
		assert.Equal(t, 2, d.Buckets[1].Count) // 55.0, 59.9
	})

	t.Run("maximum on a boundary lands in a closed final bucket", func(t *testing.T) {
		d := Distribute("credit hours", []float64{50.0, 55.0}, 5.0)
		require.Len(t, d.Buckets, 2)
		assert.True(t, d.Buckets[1].Final)
		assert.Equal(t, 1, d.Buckets[1].Count)
		assert.Equal(t, "[55.0, 60.0]", d.Buckets[1].Label())
	})

	t.Run("empty input yields no buckets", func(t *testing.T) {
		d := Distribute("credit hours", nil, 5.0)
		assert.Empty(t, d.Buckets)
		assert.Equal(t, 0, d.Total)
	})

	t.Run("non-positive width falls back to default", func(t *testing.T) {
		d := Distribute("credit hours", []float64{10}, 0)
		assert.InDelta(t, 5.0, d.Width, 1e-9)
	})
}

func TestDistribute_CountsAlwaysSum(t *testing.T) {
	gofakeit.Seed(7)
	for trial := 0; trial < 50; trial++ {
		n := gofakeit.Number(1, 60)
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(gofakeit.Number(0, 2000)) / 10
		}
		d := Distribute("credit hours", values, 5.0)

		counted := 0
		for _, b := range d.Buckets {
			counted += b.Count
		}
		require.Equal(t, n, counted, "trial %d", trial)
		require.True(t, d.Contiguous(), "trial %d", trial)
	}
}
