// Package eventlog writes booking events to an append-only log file, one
// timestamped line per event.
package eventlog

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Biggeorgian/hotel-project/internal/logger"
)

const timeLayout = "2006-01-02 15:04:05"

// File is a file-backed event sink. Writes never fail the caller; a failed
// write is reported through the logger and dropped.
type File struct {
	l *logger.Logger
	f *os.File
}

func New(l *logger.Logger, path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open booking log %q: %w", path, err)
	}

	return &File{l: l, f: f}, nil
}

// Record appends one event line. When the context carries a valid span
// context the trace ID is included so a whole menu action can be followed
// through the log.
func (s *File) Record(ctx context.Context, msg string) {
	line := fmt.Sprintf("%s - INFO - %s", time.Now().Format(timeLayout), msg)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		line = fmt.Sprintf("%s | traceID: %s", line, sc.TraceID().String())
	}

	if _, err := fmt.Fprintln(s.f, line); err != nil {
		s.l.LogErrorf("Could not write booking event to log: %v", err.Error())
	}
}

func (s *File) Close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close booking log: %w", err)
	}

	return nil
}
