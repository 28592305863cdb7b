package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// bidLineRe matches one roster row: line number, credit hours, block hours,
// days off, duty days, then optional flag tokens. Hours carry exactly one
// fractional digit in this layout.
var bidLineRe = regexp.MustCompile(`^\s*(\d{1,4})\s+(\d{1,3}\.\d)\s+(\d{1,3}\.\d)\s+(\d{1,2})\s+(\d{1,2})(?:\s+(.*))?$`)

// vtoTokenRe matches the voluntary-time-off tail token: VTO, VTO-FLX,
// VTO/2, VTO-FLX/2.
var vtoTokenRe = regexp.MustCompile(`^VTO(?:-([A-Z0-9]+))?(?:/([A-Z0-9]+))?$`)

// bidLineParser implements LineParser for the bid-line roster layout.
// Every record is a single line, so blocks are one line long.
type bidLineParser struct {
	periodDays int
	seats      []string // seat section per 0-based source line
}

func (p *bidLineParser) Layout() string { return "bidline" }

func (p *bidLineParser) IsRecordStart(line string) bool {
	return bidLineRe.MatchString(line)
}

func (p *bidLineParser) ParseBlock(b Block) (Record, []Warning) {
	line := b.Lines[0]
	m := bidLineRe.FindStringSubmatch(line)
	if m == nil {
		return nil, []Warning{{Line: b.StartLine, Message: "row does not match bid-line pattern", Raw: line}}
	}

	bl := BidLine{}
	var ws []Warning

	bl.Number, _ = strconv.Atoi(m[1])
	if b.StartLine-1 < len(p.seats) {
		bl.Seat = p.seats[b.StartLine-1]
	}

	var err error
	if bl.CreditHours, err = parseHours(m[2]); err != nil {
		return nil, []Warning{{Line: b.StartLine, Record: bl.RecordID(), Field: "credit", Message: err.Error(), Raw: line}}
	}
	if bl.BlockHours, err = parseHours(m[3]); err != nil {
		return nil, []Warning{{Line: b.StartLine, Record: bl.RecordID(), Field: "block", Message: err.Error(), Raw: line}}
	}
	bl.DaysOff, _ = strconv.Atoi(m[4])
	bl.DutyDays, _ = strconv.Atoi(m[5])

	for _, tok := range strings.Fields(m[6]) {
		switch tok = strings.ToUpper(tok); {
		case tok == "RES":
			bl.Reserve = true
		case tok == "HSBY":
			bl.HotStandby = true
		case strings.HasPrefix(tok, "VTO"):
			vm := vtoTokenRe.FindStringSubmatch(tok)
			if vm == nil {
				ws = append(ws, Warning{Line: b.StartLine, Record: bl.RecordID(), Field: "vto", Message: "unrecognized VTO token", Raw: tok})
				continue
			}
			bl.VTOType = vm[1]
			bl.VTOPeriod = vm[2]
		default:
			ws = append(ws, Warning{Line: b.StartLine, Record: bl.RecordID(), Field: "flags", Message: "unrecognized flag token", Raw: tok})
		}
	}

	ws = append(ws, validateBidLine(bl, p.periodDays, b.StartLine)...)
	return bl, ws
}

// parseHours parses an hours field with one fractional digit. Decimal
// parsing keeps 0.1-hour precision exact before the value is narrowed to
// float64 for statistics.
func parseHours(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hours value %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative hours value %q", s)
	}
	f, _ := d.Float64()
	return f, nil
}

// ParseBidLine parses a single roster row outside of a full extraction,
// used by round-trip tests and ad hoc tooling.
func ParseBidLine(line string) (BidLine, []Warning, error) {
	p := &bidLineParser{periodDays: MaxPlausibleDays}
	rec, ws := p.ParseBlock(Block{StartLine: 1, Lines: []string{line}})
	if rec == nil {
		return BidLine{}, ws, fmt.Errorf("line does not match bid-line pattern: %q", line)
	}
	return rec.(BidLine), ws, nil
}
