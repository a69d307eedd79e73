//go:build !logflare_debug

package logflare

import "github.com/rs/zerolog"

// defaultLogger discards diagnostics in release builds.
func defaultLogger() zerolog.Logger {
	return zerolog.Nop()
}
