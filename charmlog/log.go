// Package charmlog provides an implementation of daytrack.Logger using charmbracelet/log.
package charmlog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/daytrack"
)

type Options struct {
	Writer io.Writer
	Level  string
	Prefix string
}

// NewLogger writes to stdout unless opts.Writer is set. An unparseable level
// falls back to info.
func NewLogger(opts Options) daytrack.Logger {
	var w io.Writer = os.Stdout
	if opts.Writer != nil {
		w = opts.Writer
	}

	lvl, err := log.ParseLevel(opts.Level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything.
func Discard() daytrack.Logger {
	return NewLogger(Options{
		Writer: io.Discard,
		Level:  "fatal",
	})
}
