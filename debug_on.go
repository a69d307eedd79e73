//go:build logflare_debug

package logflare

import (
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger writes debug diagnostics to stderr.
func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Str("component", "logflare").Logger()
}
