// Package trace defines the observability hooks the pipeline emits into.
// The pipeline takes an explicit Observer instead of a process-wide tracer
// singleton, so extraction and anomaly logic stays testable without a
// running tracing subsystem. Observers are advisory: they must never alter
// extraction or anomaly results.
package trace

import (
	"context"
	"log/slog"
	"time"
)

// EndFunc closes a span opened by StartSpan.
type EndFunc func()

// Observer receives named execution spans and structured events from the
// pipeline. Implementations must be safe for concurrent use.
type Observer interface {
	// StartSpan opens a named span; attrs are alternating key/value pairs.
	// The returned EndFunc is always non-nil.
	StartSpan(ctx context.Context, name string, attrs ...any) (context.Context, EndFunc)
	// Event records a point-in-time structured event.
	Event(ctx context.Context, name string, attrs ...any)
}

// Nop discards all spans and events.
type Nop struct{}

func (Nop) StartSpan(ctx context.Context, _ string, _ ...any) (context.Context, EndFunc) {
	return ctx, func() {}
}

func (Nop) Event(context.Context, string, ...any) {}

// LogObserver mirrors spans and events onto a slog.Logger.
type LogObserver struct {
	Logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) StartSpan(ctx context.Context, name string, attrs ...any) (context.Context, EndFunc) {
	start := time.Now()
	o.Logger.Debug(name+".start", attrs...)
	return ctx, func() {
		o.Logger.Info(name+".end", append(attrs, "elapsed_ms", time.Since(start).Milliseconds())...)
	}
}

func (o *LogObserver) Event(_ context.Context, name string, attrs ...any) {
	o.Logger.Info(name, attrs...)
}
