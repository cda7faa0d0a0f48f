// Package catalog loads the fixed room catalog from a JSON file at startup.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Biggeorgian/hotel-project/internal/hotel"
)

// Record is one room entry as stored in the catalog file.
type Record struct {
	RoomNumber    int     `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsAvailable   bool    `json:"is_available"`
	MaxGuests     int     `json:"max_guests"`
}

// Load reads the ordered room records from the file at path. A missing or
// malformed file is an error the caller is expected to degrade to an empty
// catalog rather than treat as fatal.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %q: %w", path, err)
	}

	var records []Record

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file %q: %w", path, err)
	}

	return records, nil
}

// Rooms builds the room entities from catalog records, preserving order.
func Rooms(records []Record) []*hotel.Room {
	rooms := make([]*hotel.Room, 0, len(records))

	for _, r := range records {
		rooms = append(rooms, hotel.NewRoom(r.RoomNumber, r.RoomType, r.PricePerNight, r.IsAvailable, r.MaxGuests))
	}

	return rooms
}
