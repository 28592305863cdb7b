package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
	"github.com/FACorreiaa/bidline-insights/pkg/pay"
)

// Defaults for the report configuration surface.
const (
	DefaultBuyUpThreshold = 75.0
	DefaultBucketWidth    = 5.0
)

// FilterGroup names a subset of roster lines that gets its own summary
// block, e.g. captain-only or reserve-only views.
type FilterGroup struct {
	Name string
	Keep func(extract.BidLine) bool
}

// Options is the per-build configuration surface. Zero values fall back to
// the stated defaults.
type Options struct {
	Title          string
	Subtitle       string
	FilterGroups   []FilterGroup
	BuyUpThreshold float64
	BucketWidth    float64
	HourlyRate     *pay.Rate
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Bid Line Report"
	}
	if o.BuyUpThreshold <= 0 {
		o.BuyUpThreshold = DefaultBuyUpThreshold
	}
	if o.BucketWidth <= 0 {
		o.BucketWidth = DefaultBucketWidth
	}
	return o
}

// PayPeriodStat is one row of the optional pay-period averages table.
type PayPeriodStat struct {
	Period    string
	Lines     int
	AvgCredit float64
	AvgBlock  float64
}

// Aux carries the optional auxiliary tables. A nil or empty field simply
// omits its section.
type Aux struct {
	PayPeriods []PayPeriodStat
	Reserve    *extract.ReserveLineInfo
}

// Builder assembles a multi-section PDF report over roster lines. It is
// stateless between calls; every Build owns its inputs and returns a fresh
// buffer.
type Builder struct {
	opts Options
}

// NewBuilder creates a builder with defaults applied.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts.withDefaults()}
}

// Build renders the report. Section order is fixed: title, summary
// statistics, pay-period table, reserve table, distribution tables,
// distribution charts, buy-up table, buy-up chart. Empty input is fatal.
func (b *Builder) Build(lines []extract.BidLine, aux Aux) ([]byte, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyDataset
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	b.writeTitle(doc)
	b.writeSummaries(doc, lines)

	if len(aux.PayPeriods) > 0 {
		b.writePayPeriods(doc, aux.PayPeriods)
	}
	if aux.Reserve != nil && aux.Reserve.TotalSlots()+len(aux.Reserve.HotStandbyLines) > 0 {
		b.writeReserve(doc, aux.Reserve)
	}

	dists := []Distribution{
		Distribute("credit hours", column(lines, creditOf), b.opts.BucketWidth),
		Distribute("block hours", column(lines, blockOf), b.opts.BucketWidth),
	}
	for _, d := range dists {
		b.writeDistribution(doc, d)
	}
	for _, d := range dists {
		png, err := RenderBarChart(d, fmt.Sprintf("%s distribution", d.Field))
		if err != nil {
			return nil, err
		}
		if png != nil {
			b.writeImage(doc, fmt.Sprintf("dist-%s", d.Field), png, 170, 85)
		}
	}

	split, err := SplitBuyUp(lines, b.opts.BuyUpThreshold, b.opts.HourlyRate)
	if err != nil {
		return nil, err
	}
	b.writeBuyUp(doc, split)

	pie, err := RenderBuyUpPie(split, "buy-up split")
	if err != nil {
		return nil, err
	}
	if pie != nil {
		b.writeImage(doc, "buyup-pie", pie, 110, 110)
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: pdf assembly: %v", ErrRenderFailed, err)
	}
	return out.Bytes(), nil
}

func (b *Builder) writeTitle(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, b.opts.Title, "", 1, "C", false, 0, "")
	if b.opts.Subtitle != "" {
		doc.SetFont("Helvetica", "", 12)
		doc.CellFormat(0, 7, b.opts.Subtitle, "", 1, "C", false, 0, "")
	}
	doc.Ln(4)
}

// writeSummaries renders one statistics block for all lines plus one per
// configured filter group.
func (b *Builder) writeSummaries(doc *fpdf.Fpdf, lines []extract.BidLine) {
	b.writeSummaryBlock(doc, "Summary", lines)
	for _, g := range b.opts.FilterGroups {
		var kept []extract.BidLine
		for _, l := range lines {
			if g.Keep == nil || g.Keep(l) {
				kept = append(kept, l)
			}
		}
		b.writeSummaryBlock(doc, fmt.Sprintf("Summary: %s", g.Name), kept)
	}
}

func (b *Builder) writeSummaryBlock(doc *fpdf.Fpdf, heading string, lines []extract.BidLine) {
	b.sectionHeading(doc, fmt.Sprintf("%s (%d lines)", heading, len(lines)))

	summaries := []Summary{
		Summarize("credit hours", column(lines, creditOf)),
		Summarize("block hours", column(lines, blockOf)),
		Summarize("days off", column(lines, daysOffOf)),
		Summarize("duty days", column(lines, dutyDaysOf)),
	}

	b.tableHeader(doc, []string{"field", "min", "max", "mean", "median", "std dev"}, summaryWidths)
	for _, s := range summaries {
		cells := []string{s.Field, na(s, s.Min), na(s, s.Max), na(s, s.Mean), na(s, s.Median), na(s, s.StdDev)}
		b.tableRow(doc, cells, summaryWidths)
	}
	doc.Ln(4)
}

func (b *Builder) writePayPeriods(doc *fpdf.Fpdf, rows []PayPeriodStat) {
	b.sectionHeading(doc, "Pay Period Averages")
	widths := []float64{50, 30, 45, 45}
	b.tableHeader(doc, []string{"pay period", "lines", "avg credit", "avg block"}, widths)
	for _, r := range rows {
		b.tableRow(doc, []string{
			r.Period,
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%.1f", r.AvgCredit),
			fmt.Sprintf("%.1f", r.AvgBlock),
		}, widths)
	}
	doc.Ln(4)
}

func (b *Builder) writeReserve(doc *fpdf.Fpdf, info *extract.ReserveLineInfo) {
	b.sectionHeading(doc, "Reserve Lines")
	widths := []float64{80, 40}
	b.tableHeader(doc, []string{"slot type", "count"}, widths)
	b.tableRow(doc, []string{"captain", fmt.Sprintf("%d", info.CaptainSlots)}, widths)
	b.tableRow(doc, []string{"first officer", fmt.Sprintf("%d", info.FirstOfficerSlots)}, widths)
	b.tableRow(doc, []string{"total reserve", fmt.Sprintf("%d", info.TotalSlots())}, widths)
	b.tableRow(doc, []string{"hot standby", fmt.Sprintf("%d", len(info.HotStandbyLines))}, widths)
	doc.Ln(4)
}

func (b *Builder) writeDistribution(doc *fpdf.Fpdf, d Distribution) {
	b.sectionHeading(doc, fmt.Sprintf("Distribution: %s (%.1f-hour buckets)", d.Field, d.Width))
	widths := []float64{60, 30, 40}
	b.tableHeader(doc, []string{"range", "count", "share"}, widths)
	for _, bk := range d.Buckets {
		pct := 0.0
		if d.Total > 0 {
			pct = float64(bk.Count) * 100 / float64(d.Total)
		}
		b.tableRow(doc, []string{bk.Label(), fmt.Sprintf("%d", bk.Count), fmt.Sprintf("%.1f%%", pct)}, widths)
	}
	doc.Ln(4)
}

// buyUpRow is one rendered row of the buy-up table: group size, share, and
// the per-column averages of every numeric field.
type buyUpRow struct {
	Name        string
	Count       int
	Pct         float64
	AvgCredit   string
	AvgBlock    string
	AvgDaysOff  string
	AvgDutyDays string
}

func buyUpRows(s BuyUpSplit) []buyUpRow {
	groups := []struct {
		name  string
		lines []extract.BidLine
		pct   float64
	}{
		{"buy-up", s.BuyUp, s.BuyUpPct},
		{"regular", s.Regular, s.RegularPct},
	}

	rows := make([]buyUpRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, buyUpRow{
			Name:        g.name,
			Count:       len(g.lines),
			Pct:         g.pct,
			AvgCredit:   avgCell(column(g.lines, creditOf)),
			AvgBlock:    avgCell(column(g.lines, blockOf)),
			AvgDaysOff:  avgCell(column(g.lines, daysOffOf)),
			AvgDutyDays: avgCell(column(g.lines, dutyDaysOf)),
		})
	}
	return rows
}

func (b *Builder) writeBuyUp(doc *fpdf.Fpdf, s BuyUpSplit) {
	b.sectionHeading(doc, fmt.Sprintf("Buy-Up Split (threshold %.1f credit hours)", s.Threshold))
	widths := []float64{26, 18, 22, 30, 30, 30, 30}
	b.tableHeader(doc, []string{"group", "count", "share", "avg credit", "avg block", "avg days off", "avg duty days"}, widths)
	for _, row := range buyUpRows(s) {
		b.tableRow(doc, []string{
			row.Name,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%.1f%%", row.Pct),
			row.AvgCredit,
			row.AvgBlock,
			row.AvgDaysOff,
			row.AvgDutyDays,
		}, widths)
	}
	if s.EstimatedCost != nil {
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 6, fmt.Sprintf("Estimated buy-up cost: %s", s.EstimatedCost.Display()), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)
}

func (b *Builder) writeImage(doc *fpdf.Fpdf, name string, png []byte, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	doc.ImageOptions(name, (210-w)/2, doc.GetY(), w, h, true, opts, 0, "")
	doc.Ln(4)
}

func (b *Builder) sectionHeading(doc *fpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
}

var summaryWidths = []float64{45, 25, 25, 25, 25, 25}

func (b *Builder) tableHeader(doc *fpdf.Fpdf, cells []string, widths []float64) {
	doc.SetFont("Helvetica", "B", 10)
	for i, c := range cells {
		doc.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
	}
	doc.Ln(-1)
}

func (b *Builder) tableRow(doc *fpdf.Fpdf, cells []string, widths []float64) {
	doc.SetFont("Helvetica", "", 10)
	for i, c := range cells {
		doc.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
	}
	doc.Ln(-1)
}

// na renders a statistic, or N/A when the whole column was missing.
func na(s Summary, v float64) string {
	if !s.Valid || math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", v)
}

func avgCell(values []float64) string {
	s := Summarize("", values)
	if !s.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", s.Mean)
}

func column(lines []extract.BidLine, f func(extract.BidLine) float64) []float64 {
	out := make([]float64, 0, len(lines))
	for _, l := range lines {
		out = append(out, f(l))
	}
	return out
}

func creditOf(l extract.BidLine) float64   { return l.CreditHours }
func blockOf(l extract.BidLine) float64    { return l.BlockHours }
func daysOffOf(l extract.BidLine) float64  { return float64(l.DaysOff) }
func dutyDaysOf(l extract.BidLine) float64 { return float64(l.DutyDays) }
