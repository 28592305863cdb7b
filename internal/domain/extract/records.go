// Package extract converts raw text pulled from airline scheduling PDFs into
// structured records. Two document layouts are supported out of the box:
// bid-line rosters (one fixed-width numeric row per line) and pairing/trip
// reports ("Trip Id:" delimited blocks). Parsing failures are always
// per-record: a row that does not match produces a warning, never an abort.
package extract

import "fmt"

// Plausibility bounds. Values outside these are kept in the output but
// generate warnings; they are never clamped or dropped.
const (
	MaxPlausibleHours = 200.0 // credit/block hours per bid period
	MaxPlausibleTAFB  = 400.0 // time away from base per trip
	MaxPlausibleDays  = 31    // day counts within one bid period
)

// Seat positions as they appear in roster section headers.
const (
	SeatCaptain      = "CA"
	SeatFirstOfficer = "FO"
)

// BidLine is one row of a bid-line roster.
type BidLine struct {
	Number      int     // line number, unique within the roster
	CreditHours float64 // CT
	BlockHours  float64 // BT
	DaysOff     int     // DO
	DutyDays    int     // DD
	Reserve     bool
	HotStandby  bool
	Seat        string // SeatCaptain or SeatFirstOfficer when the roster is sectioned
	VTOType     string // optional voluntary-time-off type
	VTOPeriod   string // optional VTO period label
}

// RecordID implements Record.
func (b BidLine) RecordID() string { return fmt.Sprintf("line %d", b.Number) }

// Format renders the line back into the roster text pattern it was parsed
// from. ParseBidLine(b.Format()) round-trips for well-formed lines.
func (b BidLine) Format() string {
	s := fmt.Sprintf("%d %05.1f %05.1f %02d %02d", b.Number, b.CreditHours, b.BlockHours, b.DaysOff, b.DutyDays)
	if b.Reserve {
		s += " RES"
	}
	if b.HotStandby {
		s += " HSBY"
	}
	if b.VTOType != "" {
		s += " VTO-" + b.VTOType
		if b.VTOPeriod != "" {
			s += "/" + b.VTOPeriod
		}
	} else if b.VTOPeriod != "" {
		s += " VTO/" + b.VTOPeriod
	}
	return s
}

// Trip is one pairing from a pairing/trip report.
type Trip struct {
	ID          string
	EDW         bool // extended duty window classification
	TAFBHours   float64
	DutyDays    int
	CreditHours float64
	HotStandby  bool
	Reason      string // triggering reason, free text
}

// RecordID implements Record.
func (t Trip) RecordID() string { return "trip " + t.ID }

// HeaderInfo is the parsed document header of a roster or pairing report.
type HeaderInfo struct {
	Domicile   string
	Aircraft   string
	BidPeriod  string
	DateStart  string // raw token, e.g. "01SEP26"; empty when absent
	DateEnd    string
	PeriodDays int // derived from the date range; 0 when the range is absent
	SourcePage int // 1-based page the header was found on
}

// Complete reports whether domicile, aircraft, and bid period are all present.
func (h *HeaderInfo) Complete() bool {
	return h != nil && h.Domicile != "" && h.Aircraft != "" && h.BidPeriod != ""
}

// PeriodLength returns the bid-period length in days, falling back to the
// given default when the header carried no usable date range.
func (h *HeaderInfo) PeriodLength(fallback int) int {
	if h != nil && h.PeriodDays > 0 {
		return h.PeriodDays
	}
	return fallback
}

// ReserveLineInfo aggregates reserve and hot-standby slots over a roster.
type ReserveLineInfo struct {
	CaptainSlots      int
	FirstOfficerSlots int
	ReserveLines      []int
	HotStandbyLines   []int
}

// TotalSlots is captain plus first-officer slots.
func (r *ReserveLineInfo) TotalSlots() int {
	if r == nil {
		return 0
	}
	return r.CaptainSlots + r.FirstOfficerSlots
}

// Warning is a non-fatal parsing anomaly tied to a source line.
type Warning struct {
	Line    int    // 1-based source line number, 0 when not line-specific
	Record  string // record identifier when known, e.g. "line 2" or "trip 1234"
	Field   string
	Message string
	Raw     string // offending raw text, for operator triage
}

func (w Warning) String() string {
	if w.Record != "" {
		return fmt.Sprintf("%s: %s: %s", w.Record, w.Field, w.Message)
	}
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// validateBidLine checks plausibility bounds, one warning per violation.
// The days-off/duty-days overlap check emits exactly one warning.
func validateBidLine(b BidLine, periodDays, srcLine int) []Warning {
	var ws []Warning
	add := func(field, msg string) {
		ws = append(ws, Warning{Line: srcLine, Record: b.RecordID(), Field: field, Message: msg})
	}

	if b.CreditHours > MaxPlausibleHours {
		add("credit", fmt.Sprintf("credit %.1f exceeds plausible maximum %.0f", b.CreditHours, MaxPlausibleHours))
	}
	if b.BlockHours > MaxPlausibleHours {
		add("block", fmt.Sprintf("block %.1f exceeds plausible maximum %.0f", b.BlockHours, MaxPlausibleHours))
	}
	if b.DaysOff > MaxPlausibleDays {
		add("days_off", fmt.Sprintf("days off %d exceeds plausible maximum %d", b.DaysOff, MaxPlausibleDays))
	}
	if b.DutyDays > MaxPlausibleDays {
		add("duty_days", fmt.Sprintf("duty days %d exceeds plausible maximum %d", b.DutyDays, MaxPlausibleDays))
	}
	if total := b.DaysOff + b.DutyDays; total > periodDays {
		add("days_off+duty_days", fmt.Sprintf("days off + duty days = %d exceeds period length %d", total, periodDays))
	}
	return ws
}

// validateTrip checks plausibility bounds for a pairing record.
func validateTrip(t Trip, srcLine int) []Warning {
	var ws []Warning
	add := func(field, msg string) {
		ws = append(ws, Warning{Line: srcLine, Record: t.RecordID(), Field: field, Message: msg})
	}

	if t.CreditHours > MaxPlausibleHours {
		add("credit", fmt.Sprintf("credit %.1f exceeds plausible maximum %.0f", t.CreditHours, MaxPlausibleHours))
	}
	if t.TAFBHours > MaxPlausibleTAFB {
		add("tafb", fmt.Sprintf("TAFB %.1f exceeds plausible maximum %.0f", t.TAFBHours, MaxPlausibleTAFB))
	}
	if t.DutyDays > MaxPlausibleDays {
		add("duty_days", fmt.Sprintf("duty days %d exceeds plausible maximum %d", t.DutyDays, MaxPlausibleDays))
	}
	return ws
}
