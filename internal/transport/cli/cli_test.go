package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/Biggeorgian/hotel-project/internal/hotel"
	"github.com/Biggeorgian/hotel-project/internal/idgen/simple"
	"github.com/Biggeorgian/hotel-project/internal/logger"
	"github.com/Biggeorgian/hotel-project/internal/storage/memory"
)

type session struct {
	out      *bytes.Buffer
	registry *memory.Registry
	manager  *hotel.Manager
	rooms    []*hotel.Room
}

// runSession scripts a whole terminal session: input is what the customer
// types, one line per prompt.
func runSession(t *testing.T, input string) *session {
	t.Helper()

	l := logger.New(log.New(io.Discard, "", 0))
	registry := memory.New(memory.Config{L: l})
	out := &bytes.Buffer{}

	terminal := New(Conf{
		L:        l,
		In:       strings.NewReader(input),
		Out:      out,
		Registry: registry,
	})

	rooms := []*hotel.Room{
		hotel.NewRoom(101, "Single", 100, true, 2),
		hotel.NewRoom(102, "Double", 150, false, 4),
	}

	manager := hotel.New(l, "Test Hotel", rooms, nil, terminal, simple.New())

	if err := terminal.Run(context.Background(), manager); err != nil {
		t.Fatalf("run session: %v", err)
	}

	return &session{out: out, registry: registry, manager: manager, rooms: rooms}
}

func TestSessionBooksRoom(t *testing.T) {
	// Book room 101 for two July nights (standard season, so the price is
	// exactly twice the base rate) and exit.
	s := runSession(t, "2\nAlice\n500\n101\n2\n7 1\nyes\n0\n")

	if !strings.Contains(s.out.String(), "booked successfully") {
		t.Fatalf("output misses booking confirmation:\n%s", s.out.String())
	}

	if s.rooms[0].Available() {
		t.Error("room 101 still available")
	}

	alice, ok := s.registry.Customer("Alice")
	if !ok {
		t.Fatal("Alice was not registered")
	}

	if alice.Budget() != 300 {
		t.Errorf("budget = %v, want 300", alice.Budget())
	}

	if alice.BonusBalance() != 10 {
		t.Errorf("bonus = %v, want 10", alice.BonusBalance())
	}

	bookings := alice.Bookings()
	if len(bookings) != 1 || bookings[0].Nights != 2 {
		t.Fatalf("bookings = %+v, want one 2-night stay", bookings)
	}

	wantCheckIn := time.Date(time.Now().Year(), time.July, 1, 0, 0, 0, 0, time.Local)
	if !bookings[0].CheckIn.Equal(wantCheckIn) {
		t.Errorf("check-in = %v, want %v", bookings[0].CheckIn, wantCheckIn)
	}
}

func TestSessionDeclinedTopUp(t *testing.T) {
	s := runSession(t, "2\nBob\n50\n101\n2\n7 1\nyes\nno\n0\n")

	if !strings.Contains(s.out.String(), "Payment and booking could not be completed") {
		t.Fatalf("output misses payment failure:\n%s", s.out.String())
	}

	if !s.rooms[0].Available() {
		t.Error("room 101 held after declined payment")
	}

	bob, ok := s.registry.Customer("Bob")
	if !ok {
		t.Fatal("Bob was not registered")
	}

	if bob.Budget() != 50 {
		t.Errorf("budget = %v, want unchanged 50", bob.Budget())
	}
}

func TestSessionTopUpThenPay(t *testing.T) {
	s := runSession(t, "2\nEve\n50\n101\n2\n7 1\nyes\nyes\n200\n0\n")

	if !strings.Contains(s.out.String(), "booked successfully") {
		t.Fatalf("output misses booking confirmation:\n%s", s.out.String())
	}

	eve, _ := s.registry.Customer("Eve")
	if eve == nil {
		t.Fatal("Eve was not registered")
	}

	// 50 + 200 top-up - 200 price.
	if eve.Budget() != 50 {
		t.Errorf("budget = %v, want 50", eve.Budget())
	}
}

func TestSessionCancelBooking(t *testing.T) {
	s := runSession(t, "2\nCarol\n1000\n101\n2\n7 1\nyes\n4\nCarol\n1\n0\n")

	if !strings.Contains(s.out.String(), "has been cancelled") {
		t.Fatalf("output misses cancellation:\n%s", s.out.String())
	}

	if !strings.Contains(s.out.String(), "refunded 180.00") {
		t.Fatalf("output misses refund amount:\n%s", s.out.String())
	}

	if !s.rooms[0].Available() {
		t.Error("room 101 not released")
	}

	carol, _ := s.registry.Customer("Carol")
	if carol == nil {
		t.Fatal("Carol was not registered")
	}

	// 1000 - 200 price + 180 refund.
	if carol.Budget() != 980 {
		t.Errorf("budget = %v, want 980", carol.Budget())
	}

	if carol.BonusBalance() != 0 {
		t.Errorf("bonus = %v, want 0 after exact reversal", carol.BonusBalance())
	}

	if len(carol.Bookings()) != 0 {
		t.Errorf("bookings = %d, want 0", len(carol.Bookings()))
	}
}

func TestSessionWrongDateAbortsBooking(t *testing.T) {
	s := runSession(t, "2\nDave\n100\n101\n2\nnot a date\n0\n")

	if !strings.Contains(s.out.String(), "Wrong date format") {
		t.Fatalf("output misses date error:\n%s", s.out.String())
	}

	dave, _ := s.registry.Customer("Dave")
	if dave == nil {
		t.Fatal("Dave was not registered")
	}

	if dave.Budget() != 100 || len(dave.Bookings()) != 0 {
		t.Error("state changed on aborted booking")
	}
}

func TestSessionUnknownMenuChoice(t *testing.T) {
	s := runSession(t, "9\n0\n")

	if !strings.Contains(s.out.String(), "menu digits only") {
		t.Fatalf("output misses menu hint:\n%s", s.out.String())
	}
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		want    time.Time
	}{
		{"4 29", false, time.Date(2025, time.April, 29, 0, 0, 0, 0, time.Local)},
		{" 12 31 ", false, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.Local)},
		{"13 1", true, time.Time{}},
		{"0 5", true, time.Time{}},
		{"2 30", true, time.Time{}},
		{"4", true, time.Time{}},
		{"4 29 2025", true, time.Time{}},
		{"abc def", true, time.Time{}},
		{"", true, time.Time{}},
	}

	for _, tt := range tests {
		got, err := parseMonthDay(tt.input, 2025)

		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMonthDay(%q): expected error, got %v", tt.input, got)
			}

			continue
		}

		if err != nil {
			t.Errorf("parseMonthDay(%q): %v", tt.input, err)

			continue
		}

		if !got.Equal(tt.want) {
			t.Errorf("parseMonthDay(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
