package report

import (
	"fmt"
	"math"
)

// Bucket is one fixed-width interval of a distribution. Lo is inclusive.
// Hi is exclusive except on the final bucket, which is closed so the
// maximum value always lands somewhere.
type Bucket struct {
	Lo    float64
	Hi    float64
	Count int
	Final bool
}

// Label renders the interval for table and chart captions.
func (b Bucket) Label() string {
	if b.Final {
		return fmt.Sprintf("[%.1f, %.1f]", b.Lo, b.Hi)
	}
	return fmt.Sprintf("[%.1f, %.1f)", b.Lo, b.Hi)
}

// Distribution is a bucketed histogram of one numeric field.
type Distribution struct {
	Field   string
	Width   float64
	Buckets []Bucket
	Total   int
}

// Distribute buckets values into fixed-width intervals starting at the
// floor of the minimum aligned to the width. Width defaults to 5.0 when
// non-positive. Empty input yields a distribution with no buckets.
func Distribute(field string, values []float64, width float64) Distribution {
	if width <= 0 {
		width = 5.0
	}
	d := Distribution{Field: field, Width: width}
	if len(values) == 0 {
		return d
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	lo := math.Floor(min/width) * width
	n := int(math.Floor((max-lo)/width)) + 1
	d.Buckets = make([]Bucket, n)
	for i := range d.Buckets {
		d.Buckets[i] = Bucket{Lo: lo + float64(i)*width, Hi: lo + float64(i+1)*width}
	}
	d.Buckets[n-1].Final = true

	for _, v := range values {
		i := int(math.Floor((v - lo) / width))
		if i >= n {
			i = n - 1
		}
		d.Buckets[i].Count++
		d.Total++
	}
	return d
}

// Contiguous reports whether every bucket's Hi equals the next bucket's Lo.
// Always true for distributions built by Distribute; callers assembling
// buckets by hand use it as a sanity check.
func (d Distribution) Contiguous() bool {
	for i := 1; i < len(d.Buckets); i++ {
		if d.Buckets[i-1].Hi != d.Buckets[i].Lo {
			return false
		}
	}
	return true
}
