package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"
	"chatcast/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConnectionService_OnConnect(t *testing.T) {
	t.Run("should register a gateway connection with production defaults", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIConnectionRepository(ctrl)
		metrics := mocks.NewMockIMetrics(ctrl)
		svc := NewConnectionService(repository, metrics, slog.Default(), chat.ModeProduction, "", 24*time.Hour)
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return at }

		repository.EXPECT().Save(gomock.Any(), chat.Connection{
			ConnectionID: "gw-1",
			RoomID:       "general",
			UserID:       "anon",
			Username:     "anon",
			Transport:    chat.TransportGateway,
			PushTarget:   "gw-1",
			ConnectedAt:  at,
			ExpiresAt:    at.Add(24 * time.Hour),
		}).Return(nil)
		metrics.EXPECT().EmitConnectionEvent("connect", "general")

		id := svc.OnConnect(context.Background(), chat.ConnectRequest{ConnectionID: "gw-1"})

		req.Equal("gw-1", id)
	})

	t.Run("should register a local connection with a loopback push target", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIConnectionRepository(ctrl)
		metrics := mocks.NewMockIMetrics(ctrl)
		svc := NewConnectionService(repository, metrics, slog.Default(), chat.ModeDevelopment, "http://localhost:3001/", 24*time.Hour)

		var saved chat.Connection
		repository.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c chat.Connection) error {
			saved = c
			return nil
		})
		metrics.EXPECT().EmitConnectionEvent("connect", "lobby")

		id := svc.OnConnect(context.Background(), chat.ConnectRequest{RoomID: "Lobby"})

		req.NotEmpty(id)
		req.Equal(id, saved.ConnectionID)
		req.Equal(chat.TransportLocal, saved.Transport)
		req.Equal("http://localhost:3001/dev/conn/"+id+"/send", saved.PushTarget)
		req.Equal("dev-user", saved.UserID)
		req.Equal("Developer", saved.Username)
		req.Equal(24*time.Hour, saved.ExpiresAt.Sub(saved.ConnectedAt))
	})

	t.Run("should accept the socket when the registry write fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIConnectionRepository(ctrl)
		metrics := mocks.NewMockIMetrics(ctrl)
		svc := NewConnectionService(repository, metrics, slog.Default(), chat.ModeProduction, "", 24*time.Hour)

		repository.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.Store("save connection", fmt.Errorf("io")))
		metrics.EXPECT().EmitCount("ConnectionErrors", float64(1), map[string]string{"ErrorType": "DatabaseError", "RoomId": "general"})
		metrics.EXPECT().EmitConnectionEvent(gomock.Any(), gomock.Any()).Times(0)

		id := svc.OnConnect(context.Background(), chat.ConnectRequest{ConnectionID: "gw-1", UserID: "u1", Username: "bob"})

		req.Equal("gw-1", id)
	})
}

func TestConnectionService_OnDisconnect(t *testing.T) {
	t.Run("should delete and attribute the event to the stored room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIConnectionRepository(ctrl)
		metrics := mocks.NewMockIMetrics(ctrl)
		svc := NewConnectionService(repository, metrics, slog.Default(), chat.ModeProduction, "", 24*time.Hour)

		repository.EXPECT().Get(gomock.Any(), "c1").Return(chat.Connection{ConnectionID: "c1", RoomID: "lobby"}, nil)
		repository.EXPECT().Delete(gomock.Any(), "c1").Return(nil)
		metrics.EXPECT().EmitConnectionEvent("disconnect", "lobby")

		svc.OnDisconnect(context.Background(), "c1")
	})

	t.Run("should attribute an unknown connection to the unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIConnectionRepository(ctrl)
		metrics := mocks.NewMockIMetrics(ctrl)
		svc := NewConnectionService(repository, metrics, slog.Default(), chat.ModeProduction, "", 24*time.Hour)

		repository.EXPECT().Get(gomock.Any(), "ghost").Return(chat.Connection{}, errors.ErrNotFound)
		repository.EXPECT().Delete(gomock.Any(), "ghost").Return(nil)
		metrics.EXPECT().EmitConnectionEvent("disconnect", "unknown")

		svc.OnDisconnect(context.Background(), "ghost")
	})

	t.Run("should report deletion failures as a metric only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIConnectionRepository(ctrl)
		metrics := mocks.NewMockIMetrics(ctrl)
		svc := NewConnectionService(repository, metrics, slog.Default(), chat.ModeProduction, "", 24*time.Hour)

		repository.EXPECT().Get(gomock.Any(), "c1").Return(chat.Connection{RoomID: "general"}, nil)
		repository.EXPECT().Delete(gomock.Any(), "c1").Return(errors.Store("delete connection", fmt.Errorf("io")))
		metrics.EXPECT().EmitCount("DisconnectionErrors", float64(1), map[string]string{"ErrorType": "DatabaseError", "RoomId": "general"})

		svc.OnDisconnect(context.Background(), "c1")
	})
}
