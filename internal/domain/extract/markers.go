package extract

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// LineKind classifies a raw text line by the marker keywords it carries.
type LineKind int

const (
	KindUnknown LineKind = iota
	KindTripStart
	KindCaptainSection
	KindFirstOfficerSection
	KindDomicile
	KindAircraft
	KindBidPeriod
	KindReserve
	KindHotStandby
)

// Marker binds a keyword to a line kind. Higher priority wins when a line
// carries several keywords (e.g. a hot-standby reserve section header).
type Marker struct {
	Keyword  string
	Kind     LineKind
	Priority int
}

// MarkerSet matches many keywords against a line in a single pass using
// Aho-Corasick, the same way transaction descriptions are categorized:
// matching time is independent of the number of keywords.
type MarkerSet struct {
	matcher *ahocorasick.Matcher
	markers []Marker
}

// NewMarkerSet builds the matcher. Keywords are matched case-insensitively.
func NewMarkerSet(markers []Marker) *MarkerSet {
	dict := make([]string, len(markers))
	for i, m := range markers {
		dict[i] = strings.ToUpper(m.Keyword)
	}
	return &MarkerSet{
		matcher: ahocorasick.NewStringMatcher(dict),
		markers: markers,
	}
}

// Classify returns the highest-priority kind whose keyword occurs in the
// line, or KindUnknown.
func (s *MarkerSet) Classify(line string) LineKind {
	best := KindUnknown
	bestPriority := -1
	for _, idx := range s.matcher.Match([]byte(strings.ToUpper(line))) {
		if idx < 0 || idx >= len(s.markers) {
			continue
		}
		if m := s.markers[idx]; m.Priority > bestPriority {
			best = m.Kind
			bestPriority = m.Priority
		}
	}
	return best
}

// Contains reports whether any keyword of the given kind occurs in the line.
func (s *MarkerSet) Contains(line string, kind LineKind) bool {
	for _, idx := range s.matcher.Match([]byte(strings.ToUpper(line))) {
		if idx >= 0 && idx < len(s.markers) && s.markers[idx].Kind == kind {
			return true
		}
	}
	return false
}

// rosterMarkers covers the single supported airline layout. An alternate
// layout supplies its own MarkerSet together with its LineParser.
var rosterMarkers = NewMarkerSet([]Marker{
	{Keyword: "TRIP ID:", Kind: KindTripStart, Priority: 100},
	{Keyword: "CAPTAIN", Kind: KindCaptainSection, Priority: 50},
	{Keyword: "FIRST OFFICER", Kind: KindFirstOfficerSection, Priority: 60},
	{Keyword: "DOMICILE", Kind: KindDomicile, Priority: 10},
	{Keyword: "BASE:", Kind: KindDomicile, Priority: 9},
	{Keyword: "AIRCRAFT", Kind: KindAircraft, Priority: 10},
	{Keyword: "EQUIPMENT", Kind: KindAircraft, Priority: 9},
	{Keyword: "BID PERIOD", Kind: KindBidPeriod, Priority: 10},
	{Keyword: "HSBY", Kind: KindHotStandby, Priority: 20},
	{Keyword: "HOT STANDBY", Kind: KindHotStandby, Priority: 20},
	{Keyword: "RESERVE", Kind: KindReserve, Priority: 5},
})
