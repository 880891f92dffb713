// Package logger configures charmbracelet/log for the wordgram commands.
// Logs go to stderr so that reports written to stdout stay machine readable.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup points the global logger at w and picks the level: debug when
// requested, warnings otherwise.
func Setup(w io.Writer, debug bool) {
	log.SetOutput(w)
	log.SetReportTimestamp(false)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportCaller(false)
}

// New creates a prefixed charm log on stderr that respects the global level.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, false, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
