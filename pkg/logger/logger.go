// Package logger owns the process-wide zerolog logger for the storefront
// service. Call Init exactly once from main, then hand the returned logger
// down through constructors; Get exists for the rare place that cannot take
// an injected logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// serviceName is stamped on every log line so aggregated streams stay
// attributable.
const serviceName = "storefront-api"

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum level emitted: trace, debug, info, warn, error.
	// Unknown values fall back to info.
	Level string
	// Pretty switches to the human-readable console writer. Production runs
	// keep this off and emit one JSON object per line.
	Pretty bool
	// Output overrides the destination. Defaults to os.Stderr.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance zerolog.Logger
	ready    bool
)

// Init builds the singleton logger. The first call wins; later calls return
// the existing instance unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if ready {
		return instance
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	instance = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	ready = true
	return instance
}

// Get returns the singleton logger. Panics when Init has not run yet; that
// is a wiring bug, not a runtime condition.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Reset tears the singleton down so the next Init rebuilds it. Test use only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = zerolog.Logger{}
	ready = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
