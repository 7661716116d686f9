package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger shared by every command. It writes to w
// (stderr in main, so stdout stays clean for matrices and results) and drops
// messages below level. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one solver run. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock; call done when the run finishes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time rounded to the
// millisecond, e.g. "Solved 8x8 matrix (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

// loggerKey carries the logger that setup attaches to the command context,
// so the serve command hands the same logger to the HTTP router.
const loggerKey ctxKey = 0

// withLogger attaches l to ctx. A nil ctx is treated as Background, since
// cobra leaves the context unset when a command runs without ExecuteContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when ctx carries none (commands invoked directly in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
