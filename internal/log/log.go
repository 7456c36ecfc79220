package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dotse/slug"
	slogmulti "github.com/samber/slog-multi"
)

type Level string

const (
	Debug Level = "debug"
	Info  Level = "info"
	Warn  Level = "warn"
	Error Level = "error"
)

// Valid reports whether level is one of the known levels.
func (level Level) Valid() bool {
	switch level {
	case Debug, Info, Warn, Error:
		return true
	default:
		return false
	}
}

// ToSlogLevel maps our levels to the equivalent slog level. Unknown values fall back to info.
func ToSlogLevel(level Level) slog.Level {
	switch level {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MustCreateLogger installs the default slog logger writing to stdout and, when logPath is set,
// also to that file.
//
// Returns a cleanup function which should be called on program shutdown.
//
// Panics on failure to open the log file for writing.
func MustCreateLogger(level Level, logPath string) func() {
	var (
		closer = func() {}
		opts   = slug.HandlerOptions{
			HandlerOptions: slog.HandlerOptions{
				Level: ToSlogLevel(level),
			},
		}
		handlers = []slog.Handler{slug.NewHandler(opts, os.Stdout)}
	)

	if logPath != "" {
		logFile, errLogFile := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if errLogFile != nil {
			panic(fmt.Sprintf("Failed to open logfile: %v", errLogFile))
		}

		closer = func() {
			if errClose := logFile.Close(); errClose != nil {
				panic(fmt.Sprintf("Failed to close log file: %v", errClose))
			}
		}

		handlers = append(handlers, slog.NewTextHandler(logFile, &opts.HandlerOptions))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

	return closer
}

// ErrAttr is the standard attribute for logging an error.
func ErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	return slog.String("error", err.Error())
}

func Closer(closer io.Closer) {
	if errClose := closer.Close(); errClose != nil {
		slog.Error("Failed to close", ErrAttr(errClose))
	}
}
