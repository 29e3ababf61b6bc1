package observability

import (
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"
)

type Unit string

const (
	UnitCount        Unit = "Count"
	UnitNone         Unit = "None"
	UnitMilliseconds Unit = "Milliseconds"
)

const (
	MetricMessagesPosted      = "MessagesPosted"
	MetricMessageLength       = "MessageLength"
	MetricConnectionEvents    = "ConnectionEvents"
	MetricBroadcastAttempts   = "BroadcastAttempts"
	MetricBroadcastSuccesses  = "BroadcastSuccesses"
	MetricBroadcastFailures   = "BroadcastFailures"
	MetricBroadcastDuration   = "BroadcastDuration"
	MetricConnectionErrors    = "ConnectionErrors"
	MetricDisconnectionErrors = "DisconnectionErrors"
	MetricActiveConnections   = "ActiveConnections"

	DimensionStage     = "Stage"
	DimensionRoomID    = "RoomId"
	DimensionEventType = "EventType"
	DimensionErrorType = "ErrorType"

	ErrorTypeDatabase = "DatabaseError"
)

// Emitter writes one CloudWatch embedded metric format line per measurement.
type Emitter struct {
	mu        sync.Mutex
	out       io.Writer
	log       *slog.Logger
	namespace string
	stage     string
	now       func() time.Time
}

func NewEmitter(out io.Writer, namespace, stage string, log *slog.Logger) *Emitter {
	return &Emitter{
		out:       out,
		log:       log,
		namespace: namespace + "/" + stage,
		stage:     stage,
		now:       time.Now,
	}
}

func (e *Emitter) EmitCount(name string, value float64, dimensions map[string]string) {
	e.emit(name, value, UnitCount, dimensions)
}

func (e *Emitter) EmitGauge(name string, value float64, dimensions map[string]string) {
	e.emit(name, value, UnitNone, dimensions)
}

func (e *Emitter) EmitDurationMs(name string, d time.Duration, dimensions map[string]string) {
	e.emit(name, float64(d.Microseconds())/1000, UnitMilliseconds, dimensions)
}

func (e *Emitter) EmitMessageSent(roomID string, length int) {
	dimensions := map[string]string{DimensionRoomID: roomID}
	e.EmitCount(MetricMessagesPosted, 1, dimensions)
	e.EmitGauge(MetricMessageLength, float64(length), dimensions)
}

func (e *Emitter) EmitConnectionEvent(eventType, roomID string) {
	e.EmitCount(MetricConnectionEvents, 1, map[string]string{
		DimensionEventType: eventType,
		DimensionRoomID:    roomID,
	})
}

func (e *Emitter) EmitBroadcast(roomID string, attempts, successes int) {
	dimensions := map[string]string{DimensionRoomID: roomID}
	e.EmitCount(MetricBroadcastAttempts, float64(attempts), dimensions)
	e.EmitCount(MetricBroadcastSuccesses, float64(successes), dimensions)
	e.EmitCount(MetricBroadcastFailures, float64(attempts-successes), dimensions)
}

type emfMetric struct {
	Name string `json:"Name"`
	Unit Unit   `json:"Unit"`
}

type emfDirective struct {
	Namespace  string      `json:"Namespace"`
	Dimensions [][]string  `json:"Dimensions"`
	Metrics    []emfMetric `json:"Metrics"`
}

type emfMetadata struct {
	Timestamp         int64          `json:"Timestamp"`
	CloudWatchMetrics []emfDirective `json:"CloudWatchMetrics"`
}

func (e *Emitter) emit(name string, value float64, unit Unit, dimensions map[string]string) {
	keys := make([]string, 0, len(dimensions))
	for k := range dimensions {
		if k != DimensionStage {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	line := make(map[string]any, len(dimensions)+3)
	line["_aws"] = emfMetadata{
		Timestamp: e.now().UnixMilli(),
		CloudWatchMetrics: []emfDirective{{
			Namespace:  e.namespace,
			Dimensions: [][]string{append([]string{DimensionStage}, keys...)},
			Metrics:    []emfMetric{{Name: name, Unit: unit}},
		}},
	}
	line[DimensionStage] = e.stage
	for _, k := range keys {
		line[k] = dimensions[k]
	}
	line[name] = value

	bytes, err := json.Marshal(line)
	if err != nil {
		e.log.Warn("Unable to encode metric", "name", name, "error", err)
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err = e.out.Write(append(bytes, '\n')); err != nil {
		e.log.Warn("Unable to write metric", "name", name, "error", err)
		return
	}
	e.log.Debug("Emitted metric", "name", name, "value", value)
}
