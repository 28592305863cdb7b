package extract

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrNoHeader is returned when no page carries any recognizable header field.
var ErrNoHeader = errors.New("extract: no document header found")

var (
	// The domicile capture tolerates a single OCR-injected space between
	// letters ("AN C"); canonicalDomicile strips it back out.
	domicileRe  = regexp.MustCompile(`(?i)(?:Domicile|Base):\s*([A-Z](?: ?[A-Z]){2})`)
	aircraftRe  = regexp.MustCompile(`(?i)(?:Aircraft|Equipment):\s*([A-Z0-9-]{2,8})`)
	bidPeriodRe = regexp.MustCompile(`(?i)Bid\s+Period:\s*([A-Z]{3,9}\s*\d{2,4})`)
	dateRangeRe = regexp.MustCompile(`(\d{2}[A-Z]{3}\d{2,4})\s*-\s*(\d{2}[A-Z]{3}\d{2,4})`)
)

// knownFleet canonicalizes the aircraft token against OCR and spacing noise.
// Matching is fuzzy, so "B767F" and "767" both resolve to B767.
var knownFleet = []string{"B767", "B757", "B737", "A300", "A330", "MD11", "ATR72", "CRJ200"}

// knownDomiciles lists the crew bases that appear in these reports.
var knownDomiciles = []string{"ANC", "SDF", "IND", "MEM", "OAK", "ONT", "CVG", "MIA", "EWR", "LAX", "HNL"}

// ParseHeader scans page texts for the document header. The first page
// contributing any field sets SourcePage; later pages only fill fields the
// earlier ones left empty. ErrNoHeader is returned when no field matched
// anywhere.
func ParseHeader(pageTexts []string) (*HeaderInfo, error) {
	h := &HeaderInfo{}

	for i, text := range pageTexts {
		found := false
		if h.Domicile == "" {
			if m := domicileRe.FindStringSubmatch(text); m != nil {
				h.Domicile = canonicalDomicile(m[1])
				found = true
			}
		}
		if h.Aircraft == "" {
			if m := aircraftRe.FindStringSubmatch(text); m != nil {
				h.Aircraft = canonicalAircraft(m[1])
				found = true
			}
		}
		if h.BidPeriod == "" {
			if m := bidPeriodRe.FindStringSubmatch(text); m != nil {
				h.BidPeriod = strings.ToUpper(strings.Join(strings.Fields(m[1]), " "))
				found = true
			}
		}
		if h.DateStart == "" {
			if m := dateRangeRe.FindStringSubmatch(strings.ToUpper(text)); m != nil {
				h.DateStart, h.DateEnd = m[1], m[2]
				h.PeriodDays = periodDays(m[1], m[2])
				found = true
			}
		}
		if found && h.SourcePage == 0 {
			h.SourcePage = i + 1
		}
		if h.Complete() && h.DateStart != "" {
			break
		}
	}

	if h.SourcePage == 0 {
		return nil, ErrNoHeader
	}
	return h, nil
}

// canonicalAircraft maps a raw aircraft token onto the known fleet. An
// unmatched token is kept as-is, uppercased.
func canonicalAircraft(raw string) string {
	tok := strings.ToUpper(strings.TrimSpace(raw))
	if tok == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(tok, knownFleet)
	if len(ranks) == 0 {
		// Raw token may embed a fleet name, e.g. "B767F".
		for _, f := range knownFleet {
			if strings.Contains(tok, f) || strings.Contains(f, tok) {
				return f
			}
		}
		return tok
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// canonicalDomicile maps a raw base token onto the known domicile list.
// OCR-injected spaces are stripped first; an unmatched token is kept as-is,
// uppercased.
func canonicalDomicile(raw string) string {
	tok := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if tok == "" {
		return ""
	}
	for _, d := range knownDomiciles {
		if tok == d {
			return d
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(tok, knownDomiciles)
	if len(ranks) == 0 {
		return tok
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// periodDays computes the inclusive day count of a "01SEP26 - 30SEP26"
// range. Zero when either token fails to parse or the range is inverted.
func periodDays(start, end string) int {
	s, ok := parseRosterDate(start)
	if !ok {
		return 0
	}
	e, ok := parseRosterDate(end)
	if !ok {
		return 0
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days <= 0 {
		return 0
	}
	return days
}

func parseRosterDate(tok string) (time.Time, bool) {
	// Month abbreviations arrive uppercased; time layouts want title case.
	if len(tok) < 7 {
		return time.Time{}, false
	}
	fixed := tok[:3] + strings.ToLower(tok[3:5]) + tok[5:]
	for _, layout := range []string{"02Jan06", "02Jan2006"} {
		if t, err := time.Parse(layout, fixed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
