package workers

import (
	"context"
	"log/slog"
	"time"

	"chatcast/domain/chat"
)

type healthChecker interface {
	Check(ctx context.Context) chat.HealthCheck
}

type healthPublisher interface {
	SetStatus(status chat.HealthStatus)
}

// HealthSyncWorker re-runs the health checks on a ticker and publishes the
// aggregated status to the gRPC health service.
type HealthSyncWorker struct {
	log       *slog.Logger
	checker   healthChecker
	publisher healthPublisher
	interval  time.Duration
	last      chat.HealthStatus
}

func NewHealthSyncWorker(log *slog.Logger, checker healthChecker, publisher healthPublisher, interval time.Duration) *HealthSyncWorker {
	return &HealthSyncWorker{log: log, checker: checker, publisher: publisher, interval: interval}
}

func (w *HealthSyncWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sync(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sync")
			return nil
		case <-ticker.C:
			w.sync(ctx)
		}
	}
}

func (w *HealthSyncWorker) sync(ctx context.Context) {
	status := w.checker.Check(ctx).Status
	if status != w.last {
		w.log.Info("Health status changed", "from", w.last, "to", status)
		w.last = status
	}
	w.publisher.SetStatus(status)
}
