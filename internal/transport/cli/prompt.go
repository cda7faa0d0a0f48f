package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Biggeorgian/hotel-project/internal/hotel"
)

// readInt prompts until a whole number is entered. The second return is
// false when input ends.
func (t *Terminal) readInt(prompt string) (int, bool) {
	for {
		t.printf("%s", prompt)

		line, ok := t.readLine()
		if !ok {
			return 0, false
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			t.printf("Please enter a valid number.\n")

			continue
		}

		return n, true
	}
}

// readFloat prompts until a number is entered.
func (t *Terminal) readFloat(prompt string) (float64, bool) {
	for {
		t.printf("%s", prompt)

		line, ok := t.readLine()
		if !ok {
			return 0, false
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			t.printf("Please enter a valid number.\n")

			continue
		}

		return f, true
	}
}

// readYesNo accepts only a literal "yes" (case-insensitive) as agreement;
// anything else declines.
func (t *Terminal) readYesNo(prompt string) bool {
	t.printf("%s", prompt)

	line, ok := t.readLine()
	if !ok {
		return false
	}

	return strings.ToLower(strings.TrimSpace(line)) == "yes"
}

// parseMonthDay turns input like "4 29" into a date in the given year.
func parseMonthDay(input string, year int) (time.Time, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return time.Time{}, fmt.Errorf("expected month and day, got %q", input)
	}

	month, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", fields[0], err)
	}

	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", fields[1], err)
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if date.Day() != day || date.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("day %d does not exist in month %d", day, month)
	}

	return date, nil
}

// ConfirmBooking presents the pricing summary for a quote and asks for the
// final yes/no. It makes Terminal the booking flow's decision provider.
func (t *Terminal) ConfirmBooking(_ context.Context, quote hotel.Quote) (bool, error) {
	switch quote.Trend() {
	case hotel.RateAbove:
		t.printf("For the selected period the price is increased; a night costs %.2f GEL on average.\n", quote.AvgPerNight)
	case hotel.RateBelow:
		t.printf("For the selected period the price is reduced; a night costs %.2f GEL on average.\n", quote.AvgPerNight)
	case hotel.RateEqual:
		t.printf("The standard rate applies for the selected period.\n")
	}

	if quote.Nights != 1 {
		t.printf("Renting room №%d for %d nights costs: %.2f GEL.\n", quote.RoomNumber, quote.Nights, quote.Total)
	}

	if !t.readYesNo("Would you like to book? (yes/no): ") {
		t.printf("Booking cancelled.\n")

		return false, nil
	}

	return true, nil
}

// RequestTopUp offers a one-time budget top-up when a payment cannot be
// covered. It returns the amount to add; zero means the offer was declined.
func (t *Terminal) RequestTopUp(_ context.Context, required, balance float64) (float64, error) {
	t.printf("Payment cannot be completed. Required: %.2f GEL, balance: %.2f GEL.\n", required, balance)

	if !t.readYesNo("Would you like to top up your budget? (yes/no): ") {
		return 0, nil
	}

	amount, ok := t.readFloat("Enter the amount to add: ")
	if !ok {
		return 0, nil
	}

	if amount <= 0 {
		t.printf("Please enter a positive number.\n")

		return 0, nil
	}

	t.printf("Balance topped up successfully. New budget: %.2f GEL.\n", balance+amount)

	return amount, nil
}
