package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/baharkarakas/minivenmo/internal/events"
	"github.com/baharkarakas/minivenmo/internal/metrics"
	"github.com/baharkarakas/minivenmo/internal/models"
	"github.com/baharkarakas/minivenmo/internal/worker"
)

var tracer = otel.Tracer("github.com/baharkarakas/minivenmo/internal/services")

// ----------------- Helpers -----------------

// notifier hands committed activities to the publisher on the worker pool.
// A zero notifier does nothing.
type notifier struct {
	pub events.Publisher
	wp  *worker.Pool
}

func (n notifier) activity(a models.Activity) {
	if n.pub == nil || n.wp == nil {
		return
	}
	ev := events.FromActivity(a)
	ok := n.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := n.pub.Publish(ctx, ev); err != nil {
			metrics.EventsPublished.WithLabelValues("error").Inc()
			slog.Warn("publish activity event", "activity_id", ev.ActivityID, "err", err)
			return
		}
		metrics.EventsPublished.WithLabelValues("ok").Inc()
	})
	if !ok {
		metrics.EventsPublished.WithLabelValues("dropped").Inc()
		slog.Warn("activity event dropped, worker queue full", "activity_id", ev.ActivityID)
	}
}

// fail records err on the span and logs it at a level matching its kind.
func fail(span trace.Span, op string, err error, attrs ...any) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, "err", err)
	if isDomainError(err) {
		slog.Warn(op+" rejected", attrs...)
		return
	}
	slog.Error(op+" failed", attrs...)
}

func isDomainError(err error) bool {
	return errors.Is(err, models.ErrValidation) ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrBusinessRule)
}
