package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOTEL_NAME", "")
	t.Setenv("HOTEL_CATALOG_PATH", "")
	t.Setenv("HOTEL_BOOKING_LOG", "")

	conf := Load()

	if conf.HotelName != defaultHotelName {
		t.Errorf("HotelName = %q, want default %q", conf.HotelName, defaultHotelName)
	}

	if conf.CatalogPath != defaultCatalogPath {
		t.Errorf("CatalogPath = %q, want default %q", conf.CatalogPath, defaultCatalogPath)
	}

	if conf.BookingLog != defaultBookingLog {
		t.Errorf("BookingLog = %q, want default %q", conf.BookingLog, defaultBookingLog)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOTEL_NAME", "Grand Test")
	t.Setenv("HOTEL_CATALOG_PATH", "/tmp/rooms.json")
	t.Setenv("HOTEL_BOOKING_LOG", "/tmp/events.log")

	conf := Load()

	if conf.HotelName != "Grand Test" {
		t.Errorf("HotelName = %q", conf.HotelName)
	}

	if conf.CatalogPath != "/tmp/rooms.json" {
		t.Errorf("CatalogPath = %q", conf.CatalogPath)
	}

	if conf.BookingLog != "/tmp/events.log" {
		t.Errorf("BookingLog = %q", conf.BookingLog)
	}
}
