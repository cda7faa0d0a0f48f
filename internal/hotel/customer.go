package hotel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Biggeorgian/hotel-project/internal/loyalty"
)

// FundsProvider is asked for a top-up when a customer cannot cover a
// payment. It returns the amount the customer chose to add; zero means the
// offer was declined.
type FundsProvider interface {
	RequestTopUp(ctx context.Context, required, balance float64) (float64, error)
}

// Customer holds a cash budget, a bonus balance and the ordered list of
// active bookings. Budget and bonus are mutated only through the methods
// below.
type Customer struct {
	name         string
	budget       float64
	bonusBalance float64
	bookings     []*Booking
}

func NewCustomer(name string, budget float64) *Customer {
	return &Customer{
		name:   name,
		budget: budget,
	}
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Budget() float64 {
	return c.budget
}

func (c *Customer) BonusBalance() float64 {
	return c.bonusBalance
}

// Bookings returns the active bookings in creation order. The slice is a
// copy; the bookings themselves are shared.
func (c *Customer) Bookings() []*Booking {
	out := make([]*Booking, len(c.bookings))
	copy(out, c.bookings)

	return out
}

// AddBudget credits a strictly positive amount. Zero and negative amounts
// are silently ignored.
func (c *Customer) AddBudget(amount float64) {
	if amount > 0 {
		c.budget += amount
	}
}

func (c *Customer) HasSufficientFunds(amount float64) bool {
	return c.budget >= amount
}

// PayForBooking debits totalPrice from the budget and credits the earned
// bonus, returning the bonus amount. When the budget does not cover the
// price the funds provider is given one chance to top it up; if the budget
// still falls short the payment fails with ErrPaymentDeclined and nothing
// is debited.
func (c *Customer) PayForBooking(ctx context.Context, totalPrice float64, funds FundsProvider) (float64, error) {
	if !c.HasSufficientFunds(totalPrice) {
		if funds == nil {
			return 0, fmt.Errorf("need %.2f, have %.2f: %w", totalPrice, c.budget, ErrPaymentDeclined)
		}

		amount, err := funds.RequestTopUp(ctx, totalPrice, c.budget)
		if err != nil {
			return 0, fmt.Errorf("request top-up: %w", err)
		}

		c.AddBudget(amount)

		if !c.HasSufficientFunds(totalPrice) {
			return 0, fmt.Errorf("need %.2f, have %.2f: %w", totalPrice, c.budget, ErrPaymentDeclined)
		}
	}

	c.budget -= totalPrice

	bonus := loyalty.BonusFor(totalPrice)
	c.bonusBalance += bonus

	return bonus, nil
}

// AddBooking records a paid stay. The check-out date is the check-in date
// plus the number of nights.
func (c *Customer) AddBooking(room *Room, price float64, nights int, checkIn time.Time, bonusEarned float64) *Booking {
	booking := &Booking{
		ID:          uuid.New(),
		Room:        room,
		Price:       price,
		Nights:      nights,
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, nights),
		BonusEarned: bonusEarned,
	}

	c.bookings = append(c.bookings, booking)

	return booking
}

// CancelBooking removes the booking at the given 1-based position, credits
// the partial refund, deducts exactly the bonus that booking earned and
// releases its room. The removed booking and the refund amount are
// returned. The bonus balance may go negative if the bonus was already
// spent; that is accepted as-is.
func (c *Customer) CancelBooking(index int) (*Booking, float64, error) {
	if index < 1 || index > len(c.bookings) {
		return nil, 0, fmt.Errorf("booking %d of %d: %w", index, len(c.bookings), ErrBookingIndex)
	}

	booking := c.bookings[index-1]
	c.bookings = append(c.bookings[:index-1], c.bookings[index:]...)

	refund := loyalty.RefundFor(booking.Price)
	c.AddBudget(refund)
	c.bonusBalance -= booking.BonusEarned
	booking.Room.Release()

	return booking, refund, nil
}
