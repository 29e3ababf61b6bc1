package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestEmitter(buf *bytes.Buffer) *Emitter {
	e := NewEmitter(buf, "Chatcast", "dev", slog.Default())
	e.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return e
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestEmitter_EmitCount(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	emitter := newTestEmitter(&buf)

	emitter.EmitCount("ConnectionErrors", 1, map[string]string{"ErrorType": "DatabaseError"})

	req.JSONEq(`{
		"_aws": {
			"Timestamp": 1700000000000,
			"CloudWatchMetrics": [{
				"Namespace": "Chatcast/dev",
				"Dimensions": [["Stage", "ErrorType"]],
				"Metrics": [{"Name": "ConnectionErrors", "Unit": "Count"}]
			}]
		},
		"Stage": "dev",
		"ErrorType": "DatabaseError",
		"ConnectionErrors": 1
	}`, strings.TrimSpace(buf.String()))
}

func TestEmitter_EmitGauge_Without_Dimensions(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	emitter := newTestEmitter(&buf)

	emitter.EmitGauge("ActiveConnections", 7, nil)

	lines := decodeLines(t, &buf)
	req.Len(lines, 1)
	req.Equal(float64(7), lines[0]["ActiveConnections"])
	directive := lines[0]["_aws"].(map[string]any)["CloudWatchMetrics"].([]any)[0].(map[string]any)
	req.Equal([]any{[]any{"Stage"}}, directive["Dimensions"])
	req.Equal("None", directive["Metrics"].([]any)[0].(map[string]any)["Unit"])
}

func TestEmitter_EmitBroadcast(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	emitter := newTestEmitter(&buf)

	// When 3 attempts produced 2 successes
	emitter.EmitBroadcast("general", 3, 2)

	// Then three lines carry attempts, successes and the difference
	lines := decodeLines(t, &buf)
	req.Len(lines, 3)
	req.Equal(float64(3), lines[0]["BroadcastAttempts"])
	req.Equal(float64(2), lines[1]["BroadcastSuccesses"])
	req.Equal(float64(1), lines[2]["BroadcastFailures"])
	for _, line := range lines {
		req.Equal("general", line["RoomId"])
		req.Equal("dev", line["Stage"])
	}
}

func TestEmitter_EmitMessageSent(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	emitter := newTestEmitter(&buf)

	emitter.EmitMessageSent("general", 42)

	lines := decodeLines(t, &buf)
	req.Len(lines, 2)
	req.Equal(float64(1), lines[0]["MessagesPosted"])
	req.Equal(float64(42), lines[1]["MessageLength"])
}

func TestEmitter_EmitConnectionEvent(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	emitter := newTestEmitter(&buf)

	emitter.EmitConnectionEvent("disconnect", "unknown")

	lines := decodeLines(t, &buf)
	req.Len(lines, 1)
	req.Equal("disconnect", lines[0]["EventType"])
	req.Equal("unknown", lines[0]["RoomId"])
	directive := lines[0]["_aws"].(map[string]any)["CloudWatchMetrics"].([]any)[0].(map[string]any)
	req.Equal([]any{[]any{"Stage", "EventType", "RoomId"}}, directive["Dimensions"])
}

func TestEmitter_EmitDurationMs(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	emitter := newTestEmitter(&buf)

	emitter.EmitDurationMs("BroadcastDuration", 1500*time.Microsecond, nil)

	lines := decodeLines(t, &buf)
	req.Equal(1.5, lines[0]["BroadcastDuration"])
}
