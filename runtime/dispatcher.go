// Package runtime turns message change batches into socket deliveries.
// It orchestrates lookups, fan-out and pruning without owning any storage.
package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"chatcast/contract"
	"chatcast/domain/chat"
	"chatcast/domain/event"
	"chatcast/errors"
	"chatcast/observability"

	"golang.org/x/sync/errgroup"
)

const defaultDeliveryTimeout = 5 * time.Second

type DispatcherConfig struct {
	DispatchTimeout time.Duration
	DeliveryTimeout time.Duration
	Concurrency     int
}

// Dispatcher is the broadcast dispatcher. Every record of a batch is handled
// on its own: a failing record is reported in its Outcome and the batch goes
// on.
type Dispatcher struct {
	log         *slog.Logger
	cfg         DispatcherConfig
	connections contract.IConnectionRepository
	gateway     contract.IGatewaySink
	local       contract.ILocalSink
	metrics     contract.IMetrics
	monitoring  *observability.MonitoringManager
}

func NewDispatcher(
	log *slog.Logger,
	cfg DispatcherConfig,
	connections contract.IConnectionRepository,
	gateway contract.IGatewaySink,
	local contract.ILocalSink,
	metrics contract.IMetrics,
	monitoring *observability.MonitoringManager,
) *Dispatcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = defaultDeliveryTimeout
	}
	return &Dispatcher{
		log:         log,
		cfg:         cfg,
		connections: connections,
		gateway:     gateway,
		local:       local,
		metrics:     metrics,
		monitoring:  monitoring,
	}
}

// Dispatch processes the batch under the dispatch timeout and returns one
// outcome per record, in batch order.
func (d *Dispatcher) Dispatch(ctx context.Context, records []event.Record) []event.Outcome {
	if d.cfg.DispatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.DispatchTimeout)
		defer cancel()
	}
	outcomes := make([]event.Outcome, 0, len(records))
	for _, record := range records {
		outcomes = append(outcomes, d.dispatchRecord(ctx, record))
	}
	return outcomes
}

func (d *Dispatcher) dispatchRecord(ctx context.Context, record event.Record) event.Outcome {
	outcome := event.Outcome{EventName: record.EventName}
	if !record.Actionable() {
		d.log.Debug("Skipping non insert record", "event_name", record.EventName)
		outcome.Skipped = true
		return outcome
	}
	start := time.Now()

	// 1. Decode the image, a malformed record only fails itself
	message, err := event.ToChatMessage(record.NewImage)
	if err != nil {
		d.log.Warn("Malformed change record", "error", err)
		outcome.Err = err
		return outcome
	}
	outcome.MessageID = message.ID
	outcome.RoomID = message.RoomID

	payload, err := json.Marshal(message)
	if err != nil {
		outcome.Err = fmt.Errorf("%w: %w", errors.ErrMalformedRecord, err)
		return outcome
	}

	// 2. Snapshot the live connections of the room
	connections, err := d.connections.FindByRoom(ctx, message.RoomID)
	if err != nil {
		d.monitoring.StoreErrors.Add(1)
		d.log.Error("Unable to look up room connections", "room_id", message.RoomID, "error", err)
		outcome.Err = err
		return outcome
	}

	// 3. Deliver concurrently, the counters cover the whole set
	var attempts, successes, pruned atomic.Int64
	group := new(errgroup.Group)
	group.SetLimit(d.cfg.Concurrency)
	for _, conn := range connections {
		switch conn.Transport {
		case chat.TransportGateway, chat.TransportLocal, "":
		default:
			d.log.Warn("Unknown transport, skipping", "connection_id", conn.ConnectionID, "transport", conn.Transport)
			continue
		}
		attempts.Add(1)
		group.Go(func() error {
			delivered, stale := d.deliver(ctx, conn, payload)
			switch {
			case delivered:
				successes.Add(1)
			case stale:
				if d.prune(ctx, conn) {
					pruned.Add(1)
				}
			}
			return nil
		})
	}
	_ = group.Wait()

	outcome.Attempts = int(attempts.Load())
	outcome.Successes = int(successes.Load())
	outcome.Pruned = int(pruned.Load())

	// 4. Metrics
	d.metrics.EmitMessageSent(message.RoomID, utf8.RuneCountInString(message.Text))
	d.metrics.EmitBroadcast(message.RoomID, outcome.Attempts, outcome.Successes)
	d.metrics.EmitDurationMs(observability.MetricBroadcastDuration, time.Since(start), map[string]string{
		observability.DimensionRoomID: message.RoomID,
	})
	d.monitoring.Dispatches.Add(1)
	d.monitoring.Deliveries.Add(uint64(outcome.Successes))
	d.monitoring.DeliveryFailures.Add(uint64(outcome.Failures()))

	d.log.Info("Message broadcast",
		"room_id", message.RoomID,
		"message_id", message.ID,
		"attempts", outcome.Attempts,
		"successes", outcome.Successes,
		"pruned", outcome.Pruned,
	)
	return outcome
}

// deliver pushes the payload to one connection. stale reports that the
// connection no longer exists and its record should be pruned.
func (d *Dispatcher) deliver(ctx context.Context, conn chat.Connection, payload []byte) (delivered, stale bool) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.DeliveryTimeout)
	defer cancel()

	if conn.Transport == chat.TransportLocal {
		status, err := d.local.Deliver(ctx, conn.PushTarget, payload)
		switch {
		case err != nil:
			d.log.Warn("Local delivery failed", "connection_id", conn.ConnectionID, "error", err)
			return false, false
		case status >= 200 && status < 300:
			return true, false
		case status == 404 || status == 410:
			d.log.Info("Local connection is gone", "connection_id", conn.ConnectionID, "status", status)
			return false, true
		default:
			d.log.Warn("Local delivery rejected", "connection_id", conn.ConnectionID, "status", status)
			return false, false
		}
	}

	err := d.gateway.Deliver(ctx, conn.ConnectionID, payload)
	switch {
	case err == nil:
		return true, false
	case errors.Is(err, errors.ErrGone):
		d.log.Info("Gateway connection is gone", "connection_id", conn.ConnectionID)
		return false, true
	default:
		d.log.Warn("Gateway delivery failed", "connection_id", conn.ConnectionID, "error", err)
		return false, false
	}
}

// prune deletes a stale record. The delete is not bound to the batch
// deadline.
func (d *Dispatcher) prune(ctx context.Context, conn chat.Connection) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.DeliveryTimeout)
	defer cancel()

	if err := d.connections.Delete(ctx, conn.ConnectionID); err != nil {
		d.monitoring.StoreErrors.Add(1)
		d.log.Error("Unable to prune stale connection", "connection_id", conn.ConnectionID, "room_id", conn.RoomID, "error", err)
		return false
	}
	d.monitoring.PrunedConnections.Add(1)
	return true
}
