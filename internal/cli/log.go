package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch times one step of a command and logs it at debug level with
// an "elapsed" field.
type stopwatch struct {
	logger *log.Logger
	step   string
	start  time.Time
}

func startStopwatch(l *log.Logger, step string) *stopwatch {
	return &stopwatch{logger: l, step: step, start: time.Now()}
}

// stop logs the step with keyvals appended.
func (s *stopwatch) stop(keyvals ...any) time.Duration {
	elapsed := time.Since(s.start).Round(time.Millisecond)
	s.logger.Debug(s.step, append([]any{"elapsed", elapsed}, keyvals...)...)
	return elapsed
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for code that only sees a context, such as
// backend dialers.
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
