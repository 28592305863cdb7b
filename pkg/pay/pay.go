// Package pay provides currency-safe pay arithmetic for credit-hour based
// compensation. It uses integer minor units (the Fowler Money pattern) so
// buy-up estimates never accumulate floating-point drift.
package pay

import (
	"errors"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrInvalidRate indicates a non-positive or currency-less hourly rate.
var ErrInvalidRate = errors.New("pay: hourly rate must be positive with a valid currency")

// Rate is an hourly pay rate in minor units of a single currency.
type Rate struct {
	minorPerHour int64
	currency     string
}

// NewRate creates an hourly rate from minor units (e.g. cents) per credit hour.
func NewRate(minorPerHour int64, currencyCode string) (Rate, error) {
	if minorPerHour <= 0 || money.GetCurrency(currencyCode) == nil {
		return Rate{}, ErrInvalidRate
	}
	return Rate{minorPerHour: minorPerHour, currency: currencyCode}, nil
}

// MustRate is NewRate that panics on invalid input, for package-level defaults.
func MustRate(minorPerHour int64, currencyCode string) Rate {
	r, err := NewRate(minorPerHour, currencyCode)
	if err != nil {
		panic(err)
	}
	return r
}

// Currency returns the ISO-4217 code of the rate.
func (r Rate) Currency() string { return r.currency }

// IsZero reports whether the rate is unset.
func (r Rate) IsZero() bool { return r.minorPerHour == 0 }

// ForHours returns the pay owed for a fractional number of credit hours,
// rounded to the nearest minor unit.
func (r Rate) ForHours(hours float64) *money.Money {
	if r.IsZero() || hours <= 0 {
		return money.New(0, r.currencyOrDefault())
	}
	amount := decimal.NewFromInt(r.minorPerHour).
		Mul(decimal.NewFromFloat(hours)).
		Round(0).
		IntPart()
	return money.New(amount, r.currency)
}

// BuyUpShortfall returns the supplemental pay owed to bring a bid line's
// credit up to the guarantee threshold. A credit at or above the threshold
// owes nothing.
func (r Rate) BuyUpShortfall(creditHours, thresholdHours float64) *money.Money {
	shortfall := thresholdHours - creditHours
	if shortfall <= 0 {
		return money.New(0, r.currencyOrDefault())
	}
	return r.ForHours(shortfall)
}

func (r Rate) currencyOrDefault() string {
	if r.currency == "" {
		return money.USD
	}
	return r.currency
}

// Sum adds money values of the same currency; a nil entry counts as zero.
func Sum(values ...*money.Money) (*money.Money, error) {
	var total *money.Money
	for _, v := range values {
		if v == nil {
			continue
		}
		if total == nil {
			total = v
			continue
		}
		added, err := total.Add(v)
		if err != nil {
			return nil, err
		}
		total = added
	}
	if total == nil {
		total = money.New(0, money.USD)
	}
	return total, nil
}
