package matcher

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for all calendar dates.
const dateLayout = "2006-01-02"

// AmountsMatch reports whether two amounts are equal within the configured
// tolerance. Absolute values are compared: transactions use negative amounts
// for outgoing payments while attachments are always positive, so sign never
// carries magnitude information. Symmetric in both arguments.
func (c Config) AmountsMatch(a, b float64) bool {
	diff := decimal.NewFromFloat(a).Abs().Sub(decimal.NewFromFloat(b).Abs()).Abs()
	return diff.LessThan(decimal.NewFromFloat(c.AmountTolerance))
}

// DatesWithinRange reports whether two ISO dates are at most
// DateToleranceDays apart. A malformed date on either side means the pair
// cannot match; parse failures are never surfaced to the caller.
func (c Config) DatesWithinRange(d1, d2 string) bool {
	t1, err := time.Parse(dateLayout, d1)
	if err != nil {
		return false
	}
	t2, err := time.Parse(dateLayout, d2)
	if err != nil {
		return false
	}

	diff := t1.Sub(t2)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours()/24) <= c.DateToleranceDays
}
