package workers

import (
	"context"
	"log/slog"
	"time"

	"chatcast/contract"
	"chatcast/observability"
)

// ProcessStatsWorker samples the server process (RSS, CPU, OS status) for
// /metrics and emits the connected socket count as a gauge.
type ProcessStatsWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	metrics    contract.IMetrics
	interval   time.Duration
	sample     func() (observability.ProcessStats, error)
}

func NewProcessStatsWorker(
	log *slog.Logger,
	monitoring *observability.MonitoringManager,
	metrics contract.IMetrics,
	interval time.Duration,
) *ProcessStatsWorker {
	return &ProcessStatsWorker{
		log:        log,
		monitoring: monitoring,
		metrics:    metrics,
		interval:   interval,
		sample:     observability.SampleProcess,
	}
}

func (w *ProcessStatsWorker) Run(ctx context.Context) error {
	w.log.Info("Starting process stats worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats, err := w.sample()
			if err != nil {
				w.log.Error("Failed to collect self stats", "error", err)
				continue
			}
			w.monitoring.UpdateProcess(stats)
			w.metrics.EmitGauge(observability.MetricActiveConnections, float64(w.monitoring.ConnectedClients.Load()), nil)
		}
	}
}
