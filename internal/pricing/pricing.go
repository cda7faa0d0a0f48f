// Package pricing holds the seasonal price adjustment applied to nightly
// room rates. The adjustment depends only on the day of the year, never on
// the year itself.
package pricing

import "time"

// Multipliers per season. Bands are matched in the order they appear in
// Adjustment; the first match wins.
const (
	NewYearPeak   = 1.8
	SecondaryPeak = 1.5
	LowSeason     = 0.9
	Standard      = 1.0
	HighSeason    = 1.2
	OffPeak       = 0.7
)

// Adjustment returns the seasonal multiplier for the given date. Every day
// of the year falls into exactly one band, so there is no error case.
func Adjustment(date time.Time) float64 {
	dayOfYear := date.YearDay()

	switch {
	case dayOfYear >= 362 || dayOfYear <= 3:
		return NewYearPeak
	case dayOfYear >= 13 && dayOfYear <= 15:
		return SecondaryPeak
	case dayOfYear >= 60 && dayOfYear <= 151:
		return LowSeason
	case dayOfYear >= 152 && dayOfYear <= 243:
		return Standard
	case dayOfYear >= 244 && dayOfYear <= 358:
		return HighSeason
	default:
		return OffPeak
	}
}

// AdjustmentToday is Adjustment for the current date.
func AdjustmentToday() float64 {
	return Adjustment(time.Now())
}
