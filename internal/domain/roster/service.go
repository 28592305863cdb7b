// Package roster is the orchestration layer: PDF bytes in, structured
// analysis and rendered reports out. It wires text extraction, record
// parsing, and report building behind one service type so embedding
// applications deal with a single entry point.
package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FACorreiaa/bidline-insights/internal/domain/export"
	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
	"github.com/FACorreiaa/bidline-insights/internal/domain/pdftext"
	"github.com/FACorreiaa/bidline-insights/internal/domain/report"
	"github.com/FACorreiaa/bidline-insights/pkg/config"
	"github.com/FACorreiaa/bidline-insights/pkg/pay"
)

// RosterAnalysis is the full result of analyzing one bid-line roster PDF.
type RosterAnalysis struct {
	RunID    string
	Header   *extract.HeaderInfo
	Lines    []extract.BidLine
	Reserve  *extract.ReserveLineInfo
	Warnings []extract.Warning

	TotalLines     int
	ParsedRecords  int
	SkippedRecords int
}

// PairingAnalysis is the full result of analyzing one trip report PDF.
type PairingAnalysis struct {
	RunID     string
	Header    *extract.HeaderInfo
	Trips     []extract.Trip
	Aggregate report.TripAggregate
	Warnings  []extract.Warning
}

// Service runs the extraction and reporting pipeline.
type Service struct {
	logger *slog.Logger
	cfg    *config.Config
	rate   *pay.Rate
}

// NewService builds the service. The rate is derived from config; a config
// without usable pay settings leaves buy-up costs unpriced.
func NewService(logger *slog.Logger, cfg *config.Config) *Service {
	s := &Service{logger: logger, cfg: cfg}
	if cfg != nil && cfg.Pay.RateMinor > 0 {
		if r, err := pay.NewRate(cfg.Pay.RateMinor, cfg.Pay.Currency); err == nil {
			s.rate = &r
		} else {
			logger.Warn("ignoring invalid pay rate",
				slog.Int64("rate_minor", cfg.Pay.RateMinor),
				slog.String("currency", cfg.Pay.Currency))
		}
	}
	return s
}

// AnalyzeRoster extracts bid lines from a roster PDF. Per-record problems
// come back as warnings on the analysis; only an unreadable document fails.
func (s *Service) AnalyzeRoster(ctx context.Context, pdfBytes []byte) (*RosterAnalysis, error) {
	runID := uuid.New().String()
	log := s.logger.With(slog.String("run_id", runID), slog.String("kind", "roster"))

	doc, err := pdftext.Extract(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("extract roster text: %w", err)
	}
	log.Info("extracted document text", slog.Int("pages", doc.PageCount))

	header, err := extract.ParseHeader(doc.PageTexts())
	if err != nil {
		log.Warn("document header not found")
		header = nil
	}

	res := extract.ParseBidLines(doc.Text(), extract.BidLineOptions{
		PeriodDays: header.PeriodLength(s.bidPeriodDays()),
	})

	analysis := &RosterAnalysis{
		RunID:          runID,
		Header:         header,
		Lines:          res.Lines,
		Reserve:        extract.BuildReserveInfo(res.Lines),
		Warnings:       append(docWarnings(doc), res.Warnings...),
		TotalLines:     res.TotalLines,
		ParsedRecords:  res.ParsedRecords,
		SkippedRecords: res.SkippedRecords,
	}

	log.Info("roster analyzed",
		slog.Int("lines", len(analysis.Lines)),
		slog.Int("skipped", analysis.SkippedRecords),
		slog.Int("warnings", len(analysis.Warnings)))
	return analysis, nil
}

// AnalyzePairings extracts trips from a pairing report PDF and rolls them
// up into the EDW aggregate.
func (s *Service) AnalyzePairings(ctx context.Context, pdfBytes []byte) (*PairingAnalysis, error) {
	runID := uuid.New().String()
	log := s.logger.With(slog.String("run_id", runID), slog.String("kind", "pairing"))

	doc, err := pdftext.Extract(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("extract pairing text: %w", err)
	}

	header, err := extract.ParseHeader(doc.PageTexts())
	if err != nil {
		header = nil
	}

	res := extract.ParseTrips(doc.Text())

	analysis := &PairingAnalysis{
		RunID:     runID,
		Header:    header,
		Trips:     res.Trips,
		Aggregate: report.AggregateTrips(res.Trips),
		Warnings:  append(docWarnings(doc), res.Warnings...),
	}

	log.Info("pairings analyzed",
		slog.Int("trips", len(analysis.Trips)),
		slog.Int("warnings", len(analysis.Warnings)))
	return analysis, nil
}

// BuildReport renders the roster analysis as a PDF. Options left zero fall
// back to configured then built-in defaults; a title is derived from the
// document header when none is given.
func (s *Service) BuildReport(ctx context.Context, analysis *RosterAnalysis, opts report.Options) ([]byte, error) {
	if analysis == nil || len(analysis.Lines) == 0 {
		return nil, report.ErrEmptyDataset
	}

	opts = s.applyConfig(opts, analysis.Header)

	out, err := report.NewBuilder(opts).Build(analysis.Lines, report.Aux{
		Reserve:    analysis.Reserve,
		PayPeriods: seatAverages(analysis.Lines),
	})
	if err != nil {
		return nil, fmt.Errorf("build roster report: %w", err)
	}

	s.logger.Info("report built",
		slog.String("run_id", analysis.RunID),
		slog.Int("bytes", len(out)))
	return out, nil
}

// ExportCSV renders the analysis rows as CSV.
func (s *Service) ExportCSV(analysis *RosterAnalysis) ([]byte, error) {
	if analysis == nil {
		return nil, report.ErrEmptyDataset
	}
	return export.BidLinesToCSV(analysis.Lines)
}

// ExportWorkbook renders the analysis rows as an Excel workbook.
func (s *Service) ExportWorkbook(analysis *RosterAnalysis) ([]byte, error) {
	if analysis == nil {
		return nil, report.ErrEmptyDataset
	}
	return export.BidLinesToWorkbook(analysis.Lines)
}

func (s *Service) applyConfig(opts report.Options, header *extract.HeaderInfo) report.Options {
	if s.cfg != nil {
		if opts.Title == "" {
			opts.Title = s.cfg.Report.Title
		}
		if opts.Subtitle == "" {
			opts.Subtitle = s.cfg.Report.Subtitle
		}
		if opts.BuyUpThreshold <= 0 {
			opts.BuyUpThreshold = s.cfg.Report.BuyUpCredit
		}
		if opts.BucketWidth <= 0 {
			opts.BucketWidth = s.cfg.Report.BucketWidth
		}
	}
	if opts.Title == "" && header.Complete() {
		opts.Title = fmt.Sprintf("%s %s %s", header.Domicile, header.Aircraft, header.BidPeriod)
	}
	if opts.HourlyRate == nil {
		opts.HourlyRate = s.rate
	}
	return opts
}

func (s *Service) bidPeriodDays() int {
	if s.cfg != nil && s.cfg.Parse.BidPeriodDays > 0 {
		return s.cfg.Parse.BidPeriodDays
	}
	return extract.MaxPlausibleDays
}

// seatAverages groups lines by seat section into the pay-period style
// averages table. Rosters without seat sections produce no rows, which
// omits the section from the report.
func seatAverages(lines []extract.BidLine) []report.PayPeriodStat {
	type acc struct {
		n      int
		credit float64
		block  float64
	}
	byGroup := map[string]*acc{}
	order := []string{}
	for _, l := range lines {
		if l.Seat == "" {
			continue
		}
		a, ok := byGroup[l.Seat]
		if !ok {
			a = &acc{}
			byGroup[l.Seat] = a
			order = append(order, l.Seat)
		}
		a.n++
		a.credit += l.CreditHours
		a.block += l.BlockHours
	}

	rows := make([]report.PayPeriodStat, 0, len(order))
	for _, g := range order {
		a := byGroup[g]
		rows = append(rows, report.PayPeriodStat{
			Period:    g,
			Lines:     a.n,
			AvgCredit: a.credit / float64(a.n),
			AvgBlock:  a.block / float64(a.n),
		})
	}
	return rows
}

func docWarnings(doc *pdftext.Document) []extract.Warning {
	ws := make([]extract.Warning, 0, len(doc.Warnings))
	for _, msg := range doc.Warnings {
		ws = append(ws, extract.Warning{Message: msg})
	}
	return ws
}
