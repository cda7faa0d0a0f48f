// Package hotel implements the reservation core: rooms with seasonal
// pricing, customers with budgets and bonus balances, and the manager that
// runs the booking and cancellation transactions.
package hotel

import (
	"context"
	"fmt"
	"time"

	"github.com/Biggeorgian/hotel-project/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (int, error)
}

// EventSink receives formatted booking-event lines. Delivery is
// fire-and-forget; the core never learns about sink failures.
type EventSink interface {
	Record(ctx context.Context, msg string)
}

// DecisionProvider answers the two questions the booking flow cannot decide
// on its own: whether the customer confirms a quoted booking, and whether
// they want to top up an insufficient budget.
type DecisionProvider interface {
	FundsProvider

	ConfirmBooking(ctx context.Context, quote Quote) (bool, error)
}

// Manager aggregates the fixed room catalog and orchestrates bookings.
type Manager struct {
	l           *logger.Logger
	name        string
	rooms       []*Room
	bookingsLog []string
	sink        EventSink
	decisions   DecisionProvider
	idGenerator idGenerator
}

func New(
	l *logger.Logger,
	name string,
	rooms []*Room,
	sink EventSink,
	decisions DecisionProvider,
	idGenerator idGenerator,
) *Manager {
	return &Manager{
		l:           l,
		name:        name,
		rooms:       rooms,
		sink:        sink,
		decisions:   decisions,
		idGenerator: idGenerator,
	}
}

func (m *Manager) Name() string {
	return m.name
}

func (m *Manager) Rooms() []*Room {
	out := make([]*Room, len(m.rooms))
	copy(out, m.rooms)

	return out
}

// AvailableRooms returns the rooms open for booking, in catalog order. A
// non-empty roomType keeps only rooms whose type matches it exactly.
func (m *Manager) AvailableRooms(roomType string) []*Room {
	var available []*Room

	for _, room := range m.rooms {
		if !room.Available() {
			continue
		}

		if roomType != "" && room.Type() != roomType {
			continue
		}

		available = append(available, room)
	}

	return available
}

func (m *Manager) findRoom(number int) *Room {
	for _, room := range m.rooms {
		if room.Number() == number {
			return room
		}
	}

	return nil
}

// BookRoomForCustomer runs the whole booking transaction: room lookup,
// availability check, pricing, confirmation, payment, state update and
// logging. Every failure leaves the room, the customer and the log
// untouched.
func (m *Manager) BookRoomForCustomer(
	ctx context.Context,
	customer *Customer,
	roomNumber int,
	nights int,
	checkIn time.Time,
) error {
	inputErr := newInputError()

	if customer == nil {
		inputErr.addError("customer", "provide a customer")
	}

	if nights < 1 {
		inputErr.addError("nights", "stay must be at least one night")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	room := m.findRoom(roomNumber)
	if room == nil {
		return fmt.Errorf("room %d: %w", roomNumber, ErrRoomNotFound)
	}

	if !room.Available() {
		return fmt.Errorf("room %d: %w", roomNumber, ErrRoomOccupied)
	}

	price := room.Price(nights, checkIn)
	quote := newQuote(room, nights, price)

	confirmed, err := m.decisions.ConfirmBooking(ctx, quote)
	if err != nil {
		return fmt.Errorf("confirm booking of room %d: %w", roomNumber, err)
	}

	if !confirmed {
		return fmt.Errorf("room %d: %w", roomNumber, ErrBookingDeclined)
	}

	bonus, err := customer.PayForBooking(ctx, price, m.decisions)
	if err != nil {
		return fmt.Errorf("pay %.2f for room %d: %w", price, roomNumber, err)
	}

	customer.AddBooking(room, price, nights, checkIn, bonus)

	if err := room.Book(); err != nil {
		return fmt.Errorf("book room %d: %w", roomNumber, err)
	}

	m.LogBooking(ctx, customer, room, price, "booked")

	return nil
}

// CancelBookingForCustomer cancels the customer's booking at the given
// 1-based position and logs the refund event.
func (m *Manager) CancelBookingForCustomer(
	ctx context.Context,
	customer *Customer,
	index int,
) (*Booking, float64, error) {
	booking, refund, err := customer.CancelBooking(index)
	if err != nil {
		return nil, 0, fmt.Errorf("cancel booking for %q: %w", customer.Name(), err)
	}

	m.LogBooking(ctx, customer, booking.Room, refund, "cancelled, refund issued")

	return booking, refund, nil
}

// LogBooking appends a formatted booking event to the in-memory log and
// forwards it to the event sink. Sink delivery is fire-and-forget.
func (m *Manager) LogBooking(ctx context.Context, customer *Customer, room *Room, price float64, action string) {
	var seq int

	if m.idGenerator != nil {
		id, err := m.idGenerator.GetID(ctx)
		if err != nil {
			m.l.LogWarnf("Could not get next event id: %v", err.Error())
		} else {
			seq = id
		}
	}

	msg := fmt.Sprintf("[#%d] %s: customer %q (room %d), price: %.2f GEL", seq, action, customer.Name(), room.Number(), price)

	m.bookingsLog = append(m.bookingsLog, msg)

	if m.sink != nil {
		m.sink.Record(ctx, msg)
	}
}

// BookingsLog returns a copy of the append-only booking event log.
func (m *Manager) BookingsLog() []string {
	out := make([]string, len(m.bookingsLog))
	copy(out, m.bookingsLog)

	return out
}
