package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chatcast/contract"
	"chatcast/domain/chat"
	"chatcast/observability"

	"github.com/google/uuid"
)

// ConnectionService is the connection lifecycle manager: it writes the
// registry record when a socket opens and removes it when it closes. Neither
// operation fails the socket.
type ConnectionService struct {
	repository    contract.IConnectionRepository
	metrics       contract.IMetrics
	log           *slog.Logger
	mode          chat.Mode
	publicBaseURL string
	ttl           time.Duration
	now           func() time.Time
}

func NewConnectionService(
	repository contract.IConnectionRepository,
	metrics contract.IMetrics,
	log *slog.Logger,
	mode chat.Mode,
	publicBaseURL string,
	ttl time.Duration,
) *ConnectionService {
	return &ConnectionService{
		repository:    repository,
		metrics:       metrics,
		log:           log,
		mode:          mode,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		ttl:           ttl,
		now:           time.Now,
	}
}

func (s *ConnectionService) OnConnect(ctx context.Context, req chat.ConnectRequest) string {
	roomID := chat.ResolveRoomID(req.RoomID)
	defaultUserID, defaultUsername := s.mode.DefaultIdentity()
	userID := firstNonBlank(req.UserID, defaultUserID)
	username := firstNonBlank(req.Username, defaultUsername)
	connectionID := req.ConnectionID
	if connectionID == "" {
		connectionID = uuid.NewString()
	}

	now := s.now().UTC()
	conn := chat.Connection{
		ConnectionID: connectionID,
		RoomID:       roomID,
		UserID:       userID,
		Username:     username,
		Transport:    s.mode.Transport(),
		PushTarget:   s.pushTarget(connectionID),
		ConnectedAt:  now,
		ExpiresAt:    now.Add(s.ttl),
	}

	if err := s.repository.Save(ctx, conn); err != nil {
		s.log.Error("Unable to register connection", "connection_id", connectionID, "room_id", roomID, "error", err)
		s.metrics.EmitCount(observability.MetricConnectionErrors, 1, map[string]string{
			observability.DimensionErrorType: observability.ErrorTypeDatabase,
			observability.DimensionRoomID:    roomID,
		})
		return connectionID
	}
	s.log.Info("Connection registered", "connection_id", connectionID, "room_id", roomID, "username", username)
	s.metrics.EmitConnectionEvent(chat.EventConnect, roomID)
	return connectionID
}

func (s *ConnectionService) OnDisconnect(ctx context.Context, connectionID string) {
	roomID := chat.UnknownRoomID
	if conn, err := s.repository.Get(ctx, connectionID); err == nil {
		roomID = conn.RoomID
	} else {
		s.log.Debug("Connection lookup failed on disconnect", "connection_id", connectionID, "error", err)
	}

	if err := s.repository.Delete(ctx, connectionID); err != nil {
		s.log.Error("Unable to remove connection", "connection_id", connectionID, "room_id", roomID, "error", err)
		s.metrics.EmitCount(observability.MetricDisconnectionErrors, 1, map[string]string{
			observability.DimensionErrorType: observability.ErrorTypeDatabase,
			observability.DimensionRoomID:    roomID,
		})
		return
	}
	s.log.Info("Connection removed", "connection_id", connectionID, "room_id", roomID)
	s.metrics.EmitConnectionEvent(chat.EventDisconnect, roomID)
}

func (s *ConnectionService) pushTarget(connectionID string) string {
	if s.mode.Transport() == chat.TransportLocal {
		return fmt.Sprintf("%s/dev/conn/%s/send", s.publicBaseURL, connectionID)
	}
	return connectionID
}

func firstNonBlank(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
