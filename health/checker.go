// Package health aggregates dependency checks into the status served on
// /health and mirrored on the gRPC health service.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"chatcast/domain/chat"
)

type CheckFunc func(ctx context.Context) error

type check struct {
	name     string
	critical bool
	fn       CheckFunc
}

// Checker runs the registered checks. A failing critical check makes the
// service Unhealthy, a failing optional one only Degraded.
type Checker struct {
	log     *slog.Logger
	version string
	timeout time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	checks []check
}

func NewChecker(version string, timeout time.Duration, log *slog.Logger) *Checker {
	return &Checker{log: log, version: version, timeout: timeout, now: time.Now}
}

func (c *Checker) Register(name string, critical bool, fn CheckFunc) *Checker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks = append(c.checks, check{name: name, critical: critical, fn: fn})
	return c
}

func (c *Checker) Check(ctx context.Context) chat.HealthCheck {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	c.mu.RLock()
	checks := append([]check(nil), c.checks...)
	c.mu.RUnlock()

	status := chat.Healthy
	for _, ch := range checks {
		err := ch.fn(ctx)
		if err == nil {
			continue
		}
		c.log.Warn("Health check failed", "check", ch.name, "critical", ch.critical, "error", err)
		if ch.critical {
			status = chat.Unhealthy
		} else if status == chat.Healthy {
			status = chat.Degraded
		}
	}
	return chat.HealthCheck{Status: status, Version: c.version, Timestamp: c.now().UTC()}
}

// Handler always answers 200, the status is in the body.
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(c.Check(r.Context()))
	}
}
