// Package cli implements the plansmith command-line interface.
//
// The CLI generates plans, inspects and graphs plan files, keeps a local
// history of saved plans and runs the HTTP API. It is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - generate: Build a plan from flags or a TOML config file
//   - wizard: Pick the parameters interactively, then generate
//   - inspect: Print a plan file as tables
//   - render: Render a plan file as an adjacency diagram or schedule
//   - history: List, show and delete saved plans
//   - serve: Run the HTTP API
//   - cache: Manage the plan and artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch logs the duration of one pipeline stage, e.g.
// "Rendered svg, json elapsed=12ms".
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

func (s stopwatch) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

// lap logs msg at info level with the elapsed time and any extra keyvals.
func (s stopwatch) lap(msg string, keyvals ...any) {
	s.logger.Info(msg, append([]any{"elapsed", s.elapsed()}, keyvals...)...)
}
