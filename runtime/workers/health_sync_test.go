package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chatcast/domain/chat"

	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	mu     sync.Mutex
	status chat.HealthStatus
}

func (s *stubChecker) Check(context.Context) chat.HealthCheck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return chat.HealthCheck{Status: s.status}
}

func (s *stubChecker) set(status chat.HealthStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

type recordingPublisher struct {
	mu       sync.Mutex
	statuses []chat.HealthStatus
}

func (r *recordingPublisher) SetStatus(status chat.HealthStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recordingPublisher) latest() chat.HealthStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return ""
	}
	return r.statuses[len(r.statuses)-1]
}

func TestHealthSyncWorker_Run(t *testing.T) {
	req := require.New(t)
	checker := &stubChecker{status: chat.Healthy}
	publisher := &recordingPublisher{}
	worker := NewHealthSyncWorker(slog.Default(), checker, publisher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// The first status is published right away
	req.Eventually(func() bool { return publisher.latest() == chat.Healthy }, time.Second, 5*time.Millisecond)

	// When the store goes down
	checker.set(chat.Unhealthy)

	// Then the next tick publishes it
	req.Eventually(func() bool { return publisher.latest() == chat.Unhealthy }, time.Second, 5*time.Millisecond)

	cancel()
	req.NoError(<-done)
}
