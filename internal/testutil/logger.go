package testutil

import (
	"io"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a logger that writes to the test log.
func NewTestLogger(t zerolog.TestingLog) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

// NewCaptureLogger creates a debug logger writing JSON lines to w.
func NewCaptureLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel)
}
