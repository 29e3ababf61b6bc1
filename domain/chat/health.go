package chat

import "time"

type HealthStatus string

const (
	Healthy   HealthStatus = "Healthy"
	Degraded  HealthStatus = "Degraded"
	Unhealthy HealthStatus = "Unhealthy"
)

type HealthCheck struct {
	Status    HealthStatus `json:"status"`
	Version   string       `json:"version"`
	Timestamp time.Time    `json:"timestamp"`
}
