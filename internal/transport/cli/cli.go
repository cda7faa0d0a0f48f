// Package cli is the interactive terminal for the reservation system: the
// menu loop, prompt parsing and the decision provider the booking flow
// consults for confirmations and top-ups.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Biggeorgian/hotel-project/internal/hotel"
	"github.com/Biggeorgian/hotel-project/internal/logger"
	"github.com/Biggeorgian/hotel-project/internal/storage/memory"
)

type Conf struct {
	L        *logger.Logger
	In       io.Reader
	Out      io.Writer
	Registry *memory.Registry
}

type Terminal struct {
	l        *logger.Logger
	in       *bufio.Scanner
	out      io.Writer
	registry *memory.Registry
}

func New(conf Conf) *Terminal {
	return &Terminal{
		l:        conf.L,
		in:       bufio.NewScanner(conf.In),
		out:      conf.Out,
		registry: conf.Registry,
	}
}

// Run drives the menu loop until the customer exits, input ends or the
// context is cancelled.
func (t *Terminal) Run(ctx context.Context, h *hotel.Manager) error {
	t.printf("Welcome to hotel %q!\n", h.Name())

	for ctx.Err() == nil {
		t.printf("\nChoose an action:\n" +
			"  (1) show available rooms\n" +
			"  (2) book a room\n" +
			"  (3) my bookings\n" +
			"  (4) cancel a booking\n" +
			"  (0) exit\n" +
			"Your choice: ")

		choice, ok := t.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "0":
			t.printf("Goodbye!\n")

			return nil
		case "1":
			t.showAvailableRooms(h)
		case "2":
			t.bookRoom(actionContext(ctx), h)
		case "3":
			t.showBookingSummary()
		case "4":
			t.cancelBooking(actionContext(ctx), h)
		default:
			t.printf("Please enter menu digits only!\n")
		}
	}

	return nil
}

func (t *Terminal) printf(format string, v ...any) {
	fmt.Fprintf(t.out, format, v...)
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}

	return t.in.Text(), true
}
