package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Setup routes the default slog logger to stderr so stdout stays free for
// rendered output.
func Setup(debug bool) {
	slog.SetDefault(New(os.Stderr, debug))
}

func New(w io.Writer, debug bool) *slog.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})

	return slog.New(handler)
}
