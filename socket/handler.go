package socket

import (
	"context"
	"log/slog"
	"net/http"

	"chatcast/contract"
	"chatcast/domain/chat"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades GET /ws. The hub assigns the connection id and knows the
// socket before the registry record is written, so a dispatch racing the
// open never prunes a live connection.
func Handler(hub *Hub, connections contract.IConnectionService, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		rawRoom := query.Get("roomId")
		if rawRoom == "" {
			rawRoom = query.Get("room_id")
		}
		request := chat.ConnectRequest{
			ConnectionID: uuid.NewString(),
			RoomID:       rawRoom,
			UserID:       query.Get("userId"),
			Username:     query.Get("username"),
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debug("Upgrade failed", "error", err)
			return
		}

		client := NewClient(request.ConnectionID, chat.ResolveRoomID(rawRoom), hub, conn, hub.cfg)
		hub.Register(client)
		connectionID := connections.OnConnect(r.Context(), request)

		go client.WritePump()
		go client.ReadPump(func() {
			connections.OnDisconnect(context.Background(), connectionID)
		})
	}
}
