// Package httpapi exposes the REST surface: health, metrics, message post
// and read, the socket upgrade and the development push endpoint.
package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"chatcast/contract"
	"chatcast/domain/chat"
	"chatcast/errors"
)

const maxBodyBytes = 64 << 10

// Pusher queues a frame on a live socket, see socket.Hub.Push.
type Pusher interface {
	Push(connectionID string, data []byte) error
}

type Dependencies struct {
	Log      *slog.Logger
	Messages contract.IMessageService
	Health   http.Handler
	Metrics  http.Handler
	Socket   http.Handler
	// Pusher enables POST /dev/conn/{connectionId}/send when set.
	Pusher Pusher
}

type handlers struct {
	log      *slog.Logger
	messages contract.IMessageService
	pusher   Pusher
}

func NewRouter(deps Dependencies) http.Handler {
	h := handlers{log: deps.Log, messages: deps.Messages, pusher: deps.Pusher}

	mux := http.NewServeMux()
	mux.Handle("GET /health", deps.Health)
	mux.Handle("GET /metrics", deps.Metrics)
	mux.HandleFunc("POST /chat/messages", h.postMessage)
	mux.HandleFunc("GET /chat/messages/{roomId}", h.getMessages)
	mux.Handle("GET /ws", deps.Socket)
	if deps.Pusher != nil {
		mux.HandleFunc("POST /dev/conn/{connectionId}/send", h.devSend)
	}
	return Recovery(deps.Log, CORS(mux))
}

func (h handlers) postMessage(w http.ResponseWriter, r *http.Request) {
	var request chat.SendMessageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		h.log.Info("Malformed post body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	message, err := h.messages.PostMessage(r.Context(), request)
	if err != nil {
		// Validation failures are reported as 500 like every other error
		h.log.Warn("Post message failed", "room_id", request.RoomID, "error", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h handlers) getMessages(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomId")
	response, err := h.messages.GetMessages(r.Context(), roomID)
	if err != nil {
		h.log.Warn("Get messages failed", "room_id", roomID, "error", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h handlers) devSend(w http.ResponseWriter, r *http.Request) {
	connectionID := r.PathValue("connectionId")
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err = h.pusher.Push(connectionID, body)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	case errors.Is(err, errors.ErrNotFound):
		writeError(w, http.StatusNotFound, "Unknown connection")
	case errors.Is(err, errors.ErrGone):
		writeError(w, http.StatusGone, "Connection closed")
	default:
		h.log.Warn("Dev push failed", "connection_id", connectionID, "error", err)
		writeError(w, http.StatusServiceUnavailable, "Connection busy")
	}
}
