package report

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrRenderFailed wraps chart and PDF rendering failures. Rendering is a
// hard requirement of report generation, so callers treat it as fatal.
var ErrRenderFailed = errors.New("report: render failed")

// RenderBarChart renders a distribution as a PNG bar chart. A distribution
// with no counted values has nothing to draw and returns (nil, nil); the
// report builder skips the section then.
func RenderBarChart(d Distribution, title string) ([]byte, error) {
	if d.Total == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(d.Buckets))
	for _, b := range d.Buckets {
		bars = append(bars, chart.Value{
			Label: b.Label(),
			Value: float64(b.Count),
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    900,
		Height:   450,
		BarWidth: 48,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: bar chart %q: %v", ErrRenderFailed, title, err)
	}
	return buf.Bytes(), nil
}

// RenderBuyUpPie renders the buy-up versus regular split as a PNG pie chart.
// An empty split returns (nil, nil).
func RenderBuyUpPie(s BuyUpSplit, title string) ([]byte, error) {
	total := len(s.BuyUp) + len(s.Regular)
	if total == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, 2)
	if len(s.BuyUp) > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("buy-up (%d)", len(s.BuyUp)),
			Value: float64(len(s.BuyUp)),
		})
	}
	if len(s.Regular) > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("regular (%d)", len(s.Regular)),
			Value: float64(len(s.Regular)),
		})
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("%w: pie chart %q: %v", ErrRenderFailed, title, err)
	}
	return buf.Bytes(), nil
}
