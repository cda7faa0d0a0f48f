package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Biggeorgian/hotel-project/internal/catalog"
	"github.com/Biggeorgian/hotel-project/internal/config"
	"github.com/Biggeorgian/hotel-project/internal/eventlog"
	"github.com/Biggeorgian/hotel-project/internal/hotel"
	"github.com/Biggeorgian/hotel-project/internal/idgen/simple"
	"github.com/Biggeorgian/hotel-project/internal/logger"
	"github.com/Biggeorgian/hotel-project/internal/storage/memory"
	"github.com/Biggeorgian/hotel-project/internal/transport/cli"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf := config.Load()

	records, err := catalog.Load(conf.CatalogPath)
	if err != nil {
		// A broken catalog degrades to an empty hotel, never a crash.
		l.LogErrorf("Could not load room catalog: %v", err.Error())
	}

	var sink hotel.EventSink

	bookingLog, err := eventlog.New(l, conf.BookingLog)
	if err != nil {
		l.LogErrorf("Could not open booking log, events will be kept in memory only: %v", err.Error())
	} else {
		sink = bookingLog

		defer func() {
			if err := bookingLog.Close(); err != nil {
				l.LogErrorf("Could not close booking log: %v", err.Error())
			}
		}()
	}

	registry := memory.New(memory.Config{L: l})
	idGen := simple.New()

	terminal := cli.New(cli.Conf{
		L:        l,
		In:       os.Stdin,
		Out:      os.Stdout,
		Registry: registry,
	})

	hotelManager := hotel.New(l, conf.HotelName, catalog.Rooms(records), sink, terminal, idGen)

	l.LogInfo("Hotel %q is open with %d rooms", conf.HotelName, len(records))

	if err := terminal.Run(ctx, hotelManager); err != nil {
		return err
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
