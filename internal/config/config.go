// Package config loads application configuration from the environment. A
// .env file in the working directory is read first when present; every
// value has a default so the application starts with no environment at all.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultHotelName   = "Horns and Hooves"
	defaultCatalogPath = "db.json"
	defaultBookingLog  = "bookings.log"
)

type Config struct {
	HotelName   string // display name of the hotel
	CatalogPath string // JSON room catalog read at startup
	BookingLog  string // append-only booking event log
}

func Load() Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	return Config{
		HotelName:   getenv("HOTEL_NAME", defaultHotelName),
		CatalogPath: getenv("HOTEL_CATALOG_PATH", defaultCatalogPath),
		BookingLog:  getenv("HOTEL_BOOKING_LOG", defaultBookingLog),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
