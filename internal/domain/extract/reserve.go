package extract

// BuildReserveInfo tallies reserve and hot-standby rows over a roster.
// Rows without a seat attribution still count toward the line lists but
// toward neither seat's slot count.
func BuildReserveInfo(lines []BidLine) *ReserveLineInfo {
	info := &ReserveLineInfo{}
	for _, l := range lines {
		if l.Reserve {
			info.ReserveLines = append(info.ReserveLines, l.Number)
			switch l.Seat {
			case SeatCaptain:
				info.CaptainSlots++
			case SeatFirstOfficer:
				info.FirstOfficerSlots++
			}
		}
		if l.HotStandby {
			info.HotStandbyLines = append(info.HotStandbyLines, l.Number)
		}
	}
	return info
}
