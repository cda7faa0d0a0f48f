package hotel

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one confirmed, uncancelled stay held by a customer. The room
// reference is non-owning; rooms outlive the bookings that hold them.
type Booking struct {
	ID          uuid.UUID
	Room        *Room
	Price       float64
	Nights      int
	CheckIn     time.Time
	CheckOut    time.Time
	BonusEarned float64
}

// RateTrend says how a stay's average nightly price relates to the room's
// base rate.
type RateTrend int

const (
	RateEqual RateTrend = iota
	RateAbove
	RateBelow
)

// Quote is the pricing summary presented to the customer before a booking is
// confirmed.
type Quote struct {
	RoomNumber  int
	Nights      int
	Total       float64
	AvgPerNight float64
	BaseRate    float64
}

func newQuote(room *Room, nights int, total float64) Quote {
	quote := Quote{
		RoomNumber: room.Number(),
		Nights:     nights,
		Total:      total,
		BaseRate:   room.PricePerNight(),
	}

	if nights > 0 {
		quote.AvgPerNight = round2(total / float64(nights))
	}

	return quote
}

// Trend compares the seasonal average nightly price against the base rate.
func (q Quote) Trend() RateTrend {
	switch {
	case q.AvgPerNight > q.BaseRate:
		return RateAbove
	case q.AvgPerNight < q.BaseRate:
		return RateBelow
	default:
		return RateEqual
	}
}
