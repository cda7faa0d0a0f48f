package cli

import (
	"context"
	"errors"
	"time"

	"github.com/Biggeorgian/hotel-project/internal/hotel"
)

// currentCustomer asks for a name and returns the matching account,
// creating one with a prompted starting budget on first visit.
func (t *Terminal) currentCustomer() (*hotel.Customer, bool) {
	t.printf("Enter your name: ")

	name, ok := t.readLine()
	if !ok {
		return nil, false
	}

	if customer, found := t.registry.Customer(name); found {
		t.printf("Welcome back, %s!\n", name)

		return customer, true
	}

	t.printf("Welcome, %s! (a new account will be created)\n", name)

	budget, ok := t.readFloat("Enter your budget: ")
	if !ok {
		return nil, false
	}

	customer, _ := t.registry.GetOrCreate(name, budget)

	return customer, true
}

func (t *Terminal) showAvailableRooms(h *hotel.Manager) {
	available := h.AvailableRooms("")

	t.printf("\nAvailable rooms:\n")

	if len(available) == 0 {
		t.printf("  - No rooms are free at the moment.\n")

		return
	}

	for _, room := range available {
		t.printf("  - %s\n", room)
	}
}

func (t *Terminal) bookRoom(ctx context.Context, h *hotel.Manager) {
	customer, ok := t.currentCustomer()
	if !ok {
		return
	}

	t.showAvailableRooms(h)

	roomNumber, ok := t.readInt("\nDesired room number: ")
	if !ok {
		return
	}

	nights, ok := t.readInt("How many nights are you staying?: ")
	if !ok {
		return
	}

	t.printf("Enter month and day (e.g. 4 29): ")

	line, ok := t.readLine()
	if !ok {
		return
	}

	checkIn, err := parseMonthDay(line, time.Now().Year())
	if err != nil {
		t.printf("Wrong date format.\n")

		return
	}

	err = h.BookRoomForCustomer(ctx, customer, roomNumber, nights, checkIn)

	switch {
	case err == nil:
		t.printf("Room №%d booked successfully.\n", roomNumber)
	case hotel.IsInputError(err) != nil:
		for _, msgs := range hotel.IsInputError(err).Fields() {
			for _, msg := range msgs {
				t.printf("Error: %s.\n", msg)
			}
		}
	case errors.Is(err, hotel.ErrRoomNotFound):
		t.printf("Error: room №%d not found.\n", roomNumber)
	case errors.Is(err, hotel.ErrRoomOccupied):
		t.printf("Room №%d is occupied.\n", roomNumber)
	case errors.Is(err, hotel.ErrBookingDeclined):
		// The confirmation prompt already reported the cancellation.
	case errors.Is(err, hotel.ErrPaymentDeclined):
		t.printf("Payment and booking could not be completed.\n")
	default:
		t.l.LogErrorf("Could not book room %d: %v", roomNumber, err.Error())
		t.printf("Booking failed, please try again.\n")
	}
}

func (t *Terminal) showBookingSummary() {
	customer, ok := t.currentCustomer()
	if !ok {
		return
	}

	t.printBookings(customer)
}

func (t *Terminal) printBookings(customer *hotel.Customer) {
	bookings := customer.Bookings()

	if len(bookings) == 0 {
		t.printf("\nYou have no active bookings.\n")

		return
	}

	t.printf("\n--- Active bookings of %s ---\n", customer.Name())

	for i, booking := range bookings {
		t.printf(
			"%d. Room №%d | period: %s-%s | paid: %.2f GEL\n",
			i+1,
			booking.Room.Number(),
			booking.CheckIn.Format("2006-01-02"),
			booking.CheckOut.Format("2006-01-02"),
			booking.Price,
		)
	}

	t.printf("Your budget: %.2f GEL\n", customer.Budget())
	t.printf("Earned bonus: %.2f GEL.\n", customer.BonusBalance())
}

func (t *Terminal) cancelBooking(ctx context.Context, h *hotel.Manager) {
	customer, ok := t.currentCustomer()
	if !ok {
		return
	}

	if len(customer.Bookings()) == 0 {
		t.printf("You have no bookings to cancel.\n")

		return
	}

	t.printBookings(customer)

	choice, ok := t.readInt("Choose the booking number to cancel (0 - exit): ")
	if !ok || choice == 0 {
		return
	}

	booking, refund, err := h.CancelBookingForCustomer(ctx, customer, choice)

	switch {
	case err == nil:
		t.printf("\nThe booking of room №%d has been cancelled.\n", booking.Room.Number())
		t.printf("You have been refunded %.2f GEL.\n", refund)

		if booking.BonusEarned > 0 {
			t.printf("The earned bonus of %.2f GEL has been revoked as well.\n", booking.BonusEarned)
		}
	case errors.Is(err, hotel.ErrBookingIndex):
		t.printf("Wrong number.\n")
	default:
		t.l.LogErrorf("Could not cancel booking %d: %v", choice, err.Error())
		t.printf("Cancellation failed, please try again.\n")
	}
}
