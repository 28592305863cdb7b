package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerSet_Classify(t *testing.T) {
	cases := []struct {
		name string
		line string
		want LineKind
	}{
		{"trip start", "Trip Id: 1234", KindTripStart},
		{"captain header", "CAPTAIN", KindCaptainSection},
		{"first officer outranks captain", "FIRST OFFICER CAPTAIN UPGRADE LIST", KindFirstOfficerSection},
		{"domicile", "Domicile: ANC", KindDomicile},
		{"base alias", "Base: SDF", KindDomicile},
		{"aircraft", "Aircraft: B767", KindAircraft},
		{"equipment alias", "Equipment: MD11", KindAircraft},
		{"bid period", "Bid Period: SEP 2026", KindBidPeriod},
		{"hot standby", "HOT STANDBY LINES", KindHotStandby},
		{"hsby token", "HSBY COVERAGE", KindHotStandby},
		{"plain row", "1 075.5 078.2 05 13", KindUnknown},
		{"empty", "", KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rosterMarkers.Classify(tc.line))
		})
	}
}

func TestMarkerSet_Contains(t *testing.T) {
	assert.True(t, rosterMarkers.Contains("reserve lines follow", KindReserve))
	assert.False(t, rosterMarkers.Contains("regular lines follow", KindReserve))
}

func TestMarkerSet_PriorityBreaksTies(t *testing.T) {
	// A hot-standby reserve header is a hot-standby section, not a reserve one.
	assert.Equal(t, KindHotStandby, rosterMarkers.Classify("HOT STANDBY RESERVE"))
}
