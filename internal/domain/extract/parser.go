package extract

import (
	"strings"
)

// Record is anything parsed out of a document block.
type Record interface {
	// RecordID identifies the record in warnings, e.g. "line 12" or "trip 1234".
	RecordID() string
}

// Block is a run of consecutive source lines belonging to one record.
type Block struct {
	StartLine int // 1-based line number of the first line
	Lines     []string
}

// LineParser is the capability a document layout must provide. Implementations
// decide where records begin and how a block of lines becomes a record.
type LineParser interface {
	// Layout names the layout, e.g. "bidline" or "pairing".
	Layout() string
	// IsRecordStart reports whether the line opens a new record block.
	IsRecordStart(line string) bool
	// ParseBlock converts one block into a record. A nil record with
	// warnings means the block was skipped.
	ParseBlock(b Block) (Record, []Warning)
}

// Result carries the outcome of one extraction pass. Counters mirror what
// operators want to see on an import summary: how much text came in, how
// much became records, how much was skipped with warnings.
type Result struct {
	Records []Record
	// RecordStarts holds the 1-based source line each record's block began
	// on, parallel to Records.
	RecordStarts   []int
	Warnings       []Warning
	TotalLines     int
	ParsedRecords  int
	SkippedRecords int
}

// Extractor drives a LineParser over raw document text.
type Extractor struct {
	parser LineParser
}

// NewExtractor wires an extractor to a layout parser.
func NewExtractor(p LineParser) *Extractor {
	return &Extractor{parser: p}
}

// Extract segments text into blocks and parses each one. Lines before the
// first record start are ignored (headers and column captions live there).
// A block that fails to parse is counted as skipped; extraction never aborts
// on bad records.
func (e *Extractor) Extract(text string) *Result {
	lines := splitLines(text)
	res := &Result{TotalLines: len(lines)}

	for _, b := range e.splitBlocks(lines) {
		rec, ws := e.parser.ParseBlock(b)
		res.Warnings = append(res.Warnings, ws...)
		if rec == nil {
			res.SkippedRecords++
			continue
		}
		res.Records = append(res.Records, rec)
		res.RecordStarts = append(res.RecordStarts, b.StartLine)
		res.ParsedRecords++
	}
	return res
}

// splitBlocks groups lines into record blocks. A new block starts whenever
// the parser recognizes a record start; the final block is flushed at end of
// input so the last record of a document is never lost.
func (e *Extractor) splitBlocks(lines []string) []Block {
	var blocks []Block
	var cur *Block

	for i, line := range lines {
		if e.parser.IsRecordStart(line) {
			if cur != nil {
				blocks = append(blocks, *cur)
			}
			cur = &Block{StartLine: i + 1, Lines: []string{line}}
			continue
		}
		if cur != nil {
			cur.Lines = append(cur.Lines, line)
		}
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return lines
}

// BidLineResult is the typed outcome of a bid-line roster extraction.
type BidLineResult struct {
	Lines          []BidLine
	Warnings       []Warning
	TotalLines     int
	ParsedRecords  int
	SkippedRecords int
}

// BidLineOptions tune roster extraction.
type BidLineOptions struct {
	// PeriodDays bounds the days-off plus duty-days plausibility check.
	// Zero falls back to MaxPlausibleDays.
	PeriodDays int
}

// ParseBidLines extracts bid-line rows from roster text. Seat sections
// ("CAPTAIN" / "FIRST OFFICER" headers) are tracked so each row is attributed
// to the seat whose section it appears in; rosters without section headers
// yield rows with an empty seat.
func ParseBidLines(text string, opts BidLineOptions) *BidLineResult {
	periodDays := opts.PeriodDays
	if periodDays <= 0 {
		periodDays = MaxPlausibleDays
	}

	lines := splitLines(text)
	seats := seatBySection(lines)

	p := &bidLineParser{periodDays: periodDays, seats: seats}
	res := NewExtractor(p).Extract(text)

	out := &BidLineResult{
		Warnings:       res.Warnings,
		TotalLines:     res.TotalLines,
		ParsedRecords:  res.ParsedRecords,
		SkippedRecords: res.SkippedRecords,
	}
	for _, rec := range res.Records {
		out.Lines = append(out.Lines, rec.(BidLine))
	}
	return out
}

// seatBySection walks the lines once and records which seat section each
// line falls under. Index is 0-based line number.
func seatBySection(lines []string) []string {
	seats := make([]string, len(lines))
	seat := ""
	for i, line := range lines {
		switch rosterMarkers.Classify(line) {
		case KindCaptainSection:
			seat = SeatCaptain
		case KindFirstOfficerSection:
			seat = SeatFirstOfficer
		}
		seats[i] = seat
	}
	return seats
}

// TripResult is the typed outcome of a pairing report extraction.
type TripResult struct {
	Trips          []Trip
	Warnings       []Warning
	TotalLines     int
	ParsedRecords  int
	SkippedRecords int
}

// ParseTrips extracts pairings from trip report text. A trip id seen more
// than once keeps both records and emits a warning on the duplicate.
func ParseTrips(text string) *TripResult {
	res := NewExtractor(&tripParser{}).Extract(text)

	out := &TripResult{
		Warnings:       res.Warnings,
		TotalLines:     res.TotalLines,
		ParsedRecords:  res.ParsedRecords,
		SkippedRecords: res.SkippedRecords,
	}
	seen := make(map[string]bool)
	for i, rec := range res.Records {
		t := rec.(Trip)
		if seen[t.ID] {
			out.Warnings = append(out.Warnings, Warning{
				Line:    res.RecordStarts[i],
				Record:  t.RecordID(),
				Field:   "id",
				Message: "duplicate trip id",
			})
		}
		seen[t.ID] = true
		out.Trips = append(out.Trips, t)
	}
	return out
}
