// Package cli implements the aigkit command-line interface.
//
// Every analysis command takes a graph snapshot (.json, .toml or .yaml),
// sweeps it and prints one of the reports from pkg/aig/report, writes it as
// ASCII AIGER, or draws it with Graphviz. The CLI is built on cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - summary, netlist, pis, pos, floating: circuit-wide reports
//   - gate, fanin, fanout: reports rooted at one gate
//   - write, export: AIGER and snapshot output
//   - render: DOT or SVG drawing, cached by DOT source
//   - browse: interactive gate browser
//   - cache: manage the render cache
//
// # Logging
//
// --verbose (-v) switches to debug logging; otherwise the level comes from
// the log.level setting. Loggers travel on context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took once it completes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level with the elapsed time, e.g.
// "Swept mixed.json: 6 reachable, 1 floating, 2 unused (1ms)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
