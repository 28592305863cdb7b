package report

import (
	"github.com/Rhymond/go-money"

	"github.com/FACorreiaa/bidline-insights/internal/domain/extract"
	"github.com/FACorreiaa/bidline-insights/pkg/pay"
)

// BuyUpSplit partitions roster lines by the buy-up credit threshold. A line
// whose credit is strictly below the threshold is eligible for buy-up pay.
type BuyUpSplit struct {
	Threshold  float64
	BuyUp      []extract.BidLine
	Regular    []extract.BidLine
	BuyUpPct   float64
	RegularPct float64
	// EstimatedCost is the pay owed to bring every buy-up line to the
	// threshold. Nil when no rate was supplied.
	EstimatedCost *money.Money
}

// SplitBuyUp classifies lines against the threshold and, when a rate is
// given, prices the total shortfall. Percentages sum to 100 whenever
// there is at least one line.
func SplitBuyUp(lines []extract.BidLine, threshold float64, rate *pay.Rate) (BuyUpSplit, error) {
	s := BuyUpSplit{Threshold: threshold}

	var shortfall []*money.Money
	for _, l := range lines {
		if l.CreditHours < threshold {
			s.BuyUp = append(s.BuyUp, l)
			if rate != nil {
				shortfall = append(shortfall, rate.BuyUpShortfall(l.CreditHours, threshold))
			}
		} else {
			s.Regular = append(s.Regular, l)
		}
	}

	if n := len(lines); n > 0 {
		s.BuyUpPct = float64(len(s.BuyUp)) * 100 / float64(n)
		s.RegularPct = 100 - s.BuyUpPct
	}

	if rate != nil {
		if len(shortfall) == 0 {
			s.EstimatedCost = rate.ForHours(0)
			return s, nil
		}
		cost, err := pay.Sum(shortfall...)
		if err != nil {
			return BuyUpSplit{}, err
		}
		s.EstimatedCost = cost
	}
	return s, nil
}
