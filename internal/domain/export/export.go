// Package export serializes extracted roster and pairing records to CSV and
// Excel workbooks for downstream spreadsheet analysis.
package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
	"github.com/FACorreiaa/bidline-insights/internal/domain/report"
)

// bidLineRow is the flat CSV/Excel projection of a BidLine.
type bidLineRow struct {
	Number      int     `csv:"line"`
	Seat        string  `csv:"seat"`
	CreditHours float64 `csv:"credit_hours"`
	BlockHours  float64 `csv:"block_hours"`
	DaysOff     int     `csv:"days_off"`
	DutyDays    int     `csv:"duty_days"`
	Reserve     bool    `csv:"reserve"`
	HotStandby  bool    `csv:"hot_standby"`
	VTOType     string  `csv:"vto_type"`
	VTOPeriod   string  `csv:"vto_period"`
}

type tripRow struct {
	ID          string  `csv:"trip_id"`
	EDW         bool    `csv:"edw"`
	CreditHours float64 `csv:"credit_hours"`
	TAFBHours   float64 `csv:"tafb_hours"`
	DutyDays    int     `csv:"duty_days"`
	HotStandby  bool    `csv:"hot_standby"`
	Reason      string  `csv:"reason"`
}

func toBidLineRows(lines []extract.BidLine) []bidLineRow {
	rows := make([]bidLineRow, len(lines))
	for i, l := range lines {
		rows[i] = bidLineRow{
			Number:      l.Number,
			Seat:        l.Seat,
			CreditHours: l.CreditHours,
			BlockHours:  l.BlockHours,
			DaysOff:     l.DaysOff,
			DutyDays:    l.DutyDays,
			Reserve:     l.Reserve,
			HotStandby:  l.HotStandby,
			VTOType:     l.VTOType,
			VTOPeriod:   l.VTOPeriod,
		}
	}
	return rows
}

func toTripRows(trips []extract.Trip) []tripRow {
	rows := make([]tripRow, len(trips))
	for i, t := range trips {
		rows[i] = tripRow{
			ID:          t.ID,
			EDW:         t.EDW,
			CreditHours: t.CreditHours,
			TAFBHours:   t.TAFBHours,
			DutyDays:    t.DutyDays,
			HotStandby:  t.HotStandby,
			Reason:      t.Reason,
		}
	}
	return rows
}

// BidLinesToCSV renders roster lines as CSV with a header row.
func BidLinesToCSV(lines []extract.BidLine) ([]byte, error) {
	out, err := gocsv.MarshalString(toBidLineRows(lines))
	if err != nil {
		return nil, fmt.Errorf("marshal roster csv: %w", err)
	}
	return []byte(out), nil
}

// TripsToCSV renders pairings as CSV with a header row.
func TripsToCSV(trips []extract.Trip) ([]byte, error) {
	out, err := gocsv.MarshalString(toTripRows(trips))
	if err != nil {
		return nil, fmt.Errorf("marshal trips csv: %w", err)
	}
	return []byte(out), nil
}

// BidLinesToWorkbook builds an Excel workbook with a Lines sheet and a
// Summary sheet of per-column statistics.
func BidLinesToWorkbook(lines []extract.BidLine) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const linesSheet = "Lines"
	f.SetSheetName("Sheet1", linesSheet)

	headers := []string{"line", "seat", "credit_hours", "block_hours", "days_off", "duty_days", "reserve", "hot_standby", "vto_type", "vto_period"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("workbook header: %w", err)
		}
		if err := f.SetCellValue(linesSheet, cell, h); err != nil {
			return nil, fmt.Errorf("workbook header: %w", err)
		}
	}
	for i, l := range lines {
		values := []any{l.Number, l.Seat, l.CreditHours, l.BlockHours, l.DaysOff, l.DutyDays, l.Reserve, l.HotStandby, l.VTOType, l.VTOPeriod}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("workbook row %d: %w", i+1, err)
			}
			if err := f.SetCellValue(linesSheet, cell, v); err != nil {
				return nil, fmt.Errorf("workbook row %d: %w", i+1, err)
			}
		}
	}

	if err := writeSummarySheet(f, lines); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("assemble workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, lines []extract.BidLine) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("workbook summary sheet: %w", err)
	}

	type col struct {
		name string
		get  func(extract.BidLine) float64
	}
	cols := []col{
		{"credit_hours", func(l extract.BidLine) float64 { return l.CreditHours }},
		{"block_hours", func(l extract.BidLine) float64 { return l.BlockHours }},
		{"days_off", func(l extract.BidLine) float64 { return float64(l.DaysOff) }},
		{"duty_days", func(l extract.BidLine) float64 { return float64(l.DutyDays) }},
	}

	statHeaders := []string{"field", "count", "min", "max", "mean", "median", "std_dev"}
	for i, h := range statHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("workbook summary: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("workbook summary: %w", err)
		}
	}

	for row, c := range cols {
		values := make([]float64, 0, len(lines))
		for _, l := range lines {
			values = append(values, c.get(l))
		}
		s := report.Summarize(c.name, values)

		cells := []any{s.Field, s.Count}
		if s.Valid {
			cells = append(cells, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
		} else {
			cells = append(cells, "N/A", "N/A", "N/A", "N/A", "N/A")
		}
		for i, v := range cells {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return fmt.Errorf("workbook summary: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("workbook summary: %w", err)
			}
		}
	}
	return nil
}
