package socket

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chatcast/errors"
	"chatcast/observability"
)

type Config struct {
	SendBuffer      int
	WriteWait       time.Duration
	PongWait        time.Duration
	PingPeriod      time.Duration
	MaxMessageBytes int64
}

// Hub tracks open sockets by connection id and by room. It is the gateway
// the dispatcher pushes to in production mode.
type Hub struct {
	cfg        Config
	log        *slog.Logger
	monitoring *observability.MonitoringManager

	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
}

func NewHub(cfg Config, monitoring *observability.MonitoringManager, log *slog.Logger) *Hub {
	return &Hub{
		cfg:        cfg,
		log:        log,
		monitoring: monitoring,
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c.id] = c
	members, ok := h.rooms[c.roomID]
	if !ok {
		members = make(map[string]*Client)
		h.rooms[c.roomID] = members
	}
	members[c.id] = c
	h.mu.Unlock()

	h.monitoring.ConnectedClients.Add(1)
	h.monitoring.TotalConnections.Add(1)
}

// Unregister removes the client and closes its send channel. It reports
// false when the client was already gone.
func (h *Hub) Unregister(c *Client) bool {
	h.mu.Lock()
	current, ok := h.clients[c.id]
	if !ok || current != c {
		h.mu.Unlock()
		return false
	}
	delete(h.clients, c.id)
	if members, ok := h.rooms[c.roomID]; ok {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	close(c.send)
	h.mu.Unlock()

	h.monitoring.ConnectedClients.Add(-1)
	h.monitoring.TotalDisconnects.Add(1)
	return true
}

// Push queues data on the socket of connectionID. It fails with
// errors.ErrNotFound for an unknown id, errors.ErrGone when the socket is
// closing and errors.ErrTransient when its send buffer is full.
func (h *Hub) Push(connectionID string, data []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.clients[connectionID]
	if !ok {
		return fmt.Errorf("%w: connection %s", errors.ErrNotFound, connectionID)
	}
	if c.closed.Load() {
		return fmt.Errorf("%w: connection %s is closing", errors.ErrGone, connectionID)
	}
	select {
	case c.send <- data:
		return nil
	default:
		h.monitoring.DroppedSendMessages.Add(1)
		return fmt.Errorf("%w: send buffer of %s is full", errors.ErrTransient, connectionID)
	}
}

// Deliver implements the gateway sink: an unknown connection is gone.
func (h *Hub) Deliver(ctx context.Context, connectionID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrTransient, err)
	}
	err := h.Push(connectionID, data)
	if errors.Is(err, errors.ErrNotFound) {
		return fmt.Errorf("%w: connection %s", errors.ErrGone, connectionID)
	}
	return err
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// CloseAll sends a close frame to every socket, used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Close()
	}
}
