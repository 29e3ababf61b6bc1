package delivery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"chatcast/errors"
)

// LoopbackSink delivers payloads to development connections by POSTing them
// to the push target registered at connect time.
type LoopbackSink struct {
	client *http.Client
	log    *slog.Logger
}

func NewLoopbackSink(timeout time.Duration, log *slog.Logger) *LoopbackSink {
	return &LoopbackSink{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Deliver returns the status answered by the push target. A transport
// failure yields status 0 and an error wrapping errors.ErrTransient.
func (l *LoopbackSink) Deliver(ctx context.Context, pushTarget string, payload []byte) (int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, pushTarget, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrTransient, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := l.client.Do(request)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrTransient, err)
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)

	l.log.Debug("Loopback delivery", "push_target", pushTarget, "status", response.StatusCode)
	return response.StatusCode, nil
}
