// Package loyalty holds the money policy around bookings: the bonus earned
// on every payment and the partial refund paid out on cancellation.
package loyalty

import "math"

const (
	// BonusRate is the share of every payment credited as bonus.
	BonusRate = 0.05
	// RefundRate is the share of the paid price returned on cancellation,
	// the remaining 10% is the cancellation penalty.
	RefundRate = 0.90
)

// BonusFor returns the bonus earned for paying totalPrice, rounded to two
// decimal places. A zero or tiny price may earn a zero bonus.
func BonusFor(totalPrice float64) float64 {
	return round2(totalPrice * BonusRate)
}

// RefundFor returns the amount credited back when a booking paid at
// pricePaid is cancelled.
func RefundFor(pricePaid float64) float64 {
	return round2(pricePaid * RefundRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
