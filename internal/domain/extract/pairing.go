package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Pairing report field patterns, one labeled value per line inside a
// "Trip Id:" block.
var (
	tripIDRe     = regexp.MustCompile(`(?i)Trip\s+Id:\s*(\S+)`)
	tripCreditRe = regexp.MustCompile(`(?i)Credit:\s*(\d{1,3}\.\d)`)
	tripTAFBRe   = regexp.MustCompile(`(?i)TAFB:\s*(\d{1,3}\.\d)`)
	tripDutyRe   = regexp.MustCompile(`(?i)Duty\s+Days:\s*(\d{1,2})`)
	tripEDWRe    = regexp.MustCompile(`(?i)EDW:\s*([YN])`)
	tripHSBYRe   = regexp.MustCompile(`(?i)Hot\s+Standby:\s*([YN])`)
	tripReasonRe = regexp.MustCompile(`(?i)Reason:\s*(.+)`)
)

// tripParser implements LineParser for the pairing report layout. A record
// spans every line from one "Trip Id:" marker to the next.
type tripParser struct{}

func (p *tripParser) Layout() string { return "pairing" }

func (p *tripParser) IsRecordStart(line string) bool {
	return rosterMarkers.Classify(line) == KindTripStart
}

func (p *tripParser) ParseBlock(b Block) (Record, []Warning) {
	block := strings.Join(b.Lines, "\n")

	m := tripIDRe.FindStringSubmatch(block)
	if m == nil {
		return nil, []Warning{{Line: b.StartLine, Message: "trip block carries no id", Raw: b.Lines[0]}}
	}

	t := Trip{ID: m[1]}
	var ws []Warning
	warn := func(field, msg, raw string) {
		ws = append(ws, Warning{Line: b.StartLine, Record: t.RecordID(), Field: field, Message: msg, Raw: raw})
	}

	if m := tripCreditRe.FindStringSubmatch(block); m != nil {
		if v, err := parseHours(m[1]); err == nil {
			t.CreditHours = v
		} else {
			warn("credit", err.Error(), m[1])
		}
	} else {
		warn("credit", "missing credit field", "")
	}
	if m := tripTAFBRe.FindStringSubmatch(block); m != nil {
		if v, err := parseHours(m[1]); err == nil {
			t.TAFBHours = v
		} else {
			warn("tafb", err.Error(), m[1])
		}
	} else {
		warn("tafb", "missing TAFB field", "")
	}
	if m := tripDutyRe.FindStringSubmatch(block); m != nil {
		t.DutyDays, _ = strconv.Atoi(m[1])
	} else {
		warn("duty_days", "missing duty days field", "")
	}
	if m := tripEDWRe.FindStringSubmatch(block); m != nil {
		t.EDW = strings.EqualFold(m[1], "Y")
	}
	if m := tripHSBYRe.FindStringSubmatch(block); m != nil {
		t.HotStandby = strings.EqualFold(m[1], "Y")
	}
	if m := tripReasonRe.FindStringSubmatch(block); m != nil {
		t.Reason = strings.TrimSpace(m[1])
	}

	ws = append(ws, validateTrip(t, b.StartLine)...)
	return t, ws
}
