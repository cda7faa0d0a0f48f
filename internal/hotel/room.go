package hotel

import (
	"fmt"
	"math"
	"time"

	"github.com/Biggeorgian/hotel-project/internal/pricing"
)

// Room is a single bookable room. Availability is mutated only through Book
// and Release; a room is unavailable exactly while an active booking holds it.
type Room struct {
	number        int
	roomType      string
	pricePerNight float64
	available     bool
	maxGuests     int
}

func NewRoom(number int, roomType string, pricePerNight float64, available bool, maxGuests int) *Room {
	return &Room{
		number:        number,
		roomType:      roomType,
		pricePerNight: pricePerNight,
		available:     available,
		maxGuests:     maxGuests,
	}
}

func (r *Room) Number() int {
	return r.number
}

func (r *Room) Type() string {
	return r.roomType
}

func (r *Room) PricePerNight() float64 {
	return r.pricePerNight
}

func (r *Room) Available() bool {
	return r.available
}

func (r *Room) MaxGuests() int {
	return r.maxGuests
}

// Book marks the room unavailable. A room that is already held stays held
// and ErrRoomOccupied is returned.
func (r *Room) Book() error {
	if !r.available {
		return fmt.Errorf("room %d: %w", r.number, ErrRoomOccupied)
	}

	r.available = false

	return nil
}

// Release makes the room available again. Releasing an available room is a
// no-op.
func (r *Room) Release() {
	r.available = true
}

// Price returns the cost of a stay of the given number of nights starting at
// checkIn. Every night is priced at the base rate times the seasonal
// adjustment for that night's date; the sum is rounded to two decimal places
// once at the end. Zero nights price to zero.
func (r *Room) Price(nights int, checkIn time.Time) float64 {
	var total float64

	for i := 0; i < nights; i++ {
		total += r.pricePerNight * pricing.Adjustment(checkIn.AddDate(0, 0, i))
	}

	return round2(total)
}

func (r *Room) String() string {
	return fmt.Sprintf(
		"Room №%d, type: %s, sleeps %d. Price per night: %.2f.",
		r.number,
		r.roomType,
		r.maxGuests,
		r.pricePerNight,
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
