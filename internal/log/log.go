// Package log provides the package-scoped structured logger used across
// mqsolve's ambient glue (challenge reading, solving, the CLI), following
// the same rs/zerolog-backed pattern as github.com/consensys/gnark/logger:
// a single process-wide logger, reconfigurable by the caller, handed out
// via Logger() and narrowed with .With().Str("component", ...).
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
)

// Logger returns the current process-wide logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Set replaces the process-wide logger, e.g. to raise verbosity or
// redirect output in the CLI.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetVerbose switches the logger to debug level and writes to w.
func SetVerbose(w io.Writer) {
	Set(zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: false}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel))
}
