package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"
	"chatcast/mocks"
	"chatcast/repositories"
	"chatcast/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pusherFunc func(connectionID string, data []byte) error

func (f pusherFunc) Push(connectionID string, data []byte) error { return f(connectionID, data) }

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func newTestRouter(messages *mocks.MockIMessageService, pusher Pusher) http.Handler {
	return NewRouter(Dependencies{
		Log:      slog.Default(),
		Messages: messages,
		Health:   okHandler("health"),
		Metrics:  okHandler("metrics"),
		Socket:   okHandler("socket"),
		Pusher:   pusher,
	})
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestRouter_PostMessage(t *testing.T) {
	t.Run("should answer 201 with the stored message", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		messages := mocks.NewMockIMessageService(ctrl)
		at := time.Date(2024, 5, 1, 12, 0, 0, 123000000, time.UTC)
		messages.EXPECT().
			PostMessage(gomock.Any(), chat.SendMessageRequest{RoomID: "general", UserID: "u1", Username: "alice", Text: "hi"}).
			Return(chat.Message{ID: "m1", RoomID: "general", UserID: "u1", Username: "alice", Text: "hi", CreatedAt: at}, nil)

		rec := serve(newTestRouter(messages, nil), http.MethodPost, "/chat/messages",
			`{"roomId":"general","userId":"u1","username":"alice","text":"hi"}`)

		req.Equal(http.StatusCreated, rec.Code)
		req.Equal("application/json", rec.Header().Get("Content-Type"))
		req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
		var got chat.Message
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		req.Equal("m1", got.ID)
		req.True(at.Equal(got.CreatedAt))
	})

	t.Run("should answer 400 on a malformed body", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		messages := mocks.NewMockIMessageService(ctrl)

		rec := serve(newTestRouter(messages, nil), http.MethodPost, "/chat/messages", `{"roomId":`)

		req.Equal(http.StatusBadRequest, rec.Code)
	})

	t.Run("should hide the cause of a failure behind an opaque 500", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		messages := mocks.NewMockIMessageService(ctrl)
		messages.EXPECT().
			PostMessage(gomock.Any(), gomock.Any()).
			Return(chat.Message{}, errors.Validation("text cannot be empty"))

		rec := serve(newTestRouter(messages, nil), http.MethodPost, "/chat/messages", `{"username":"alice","text":""}`)

		req.Equal(http.StatusInternalServerError, rec.Code)
		req.JSONEq(`{"error":"Internal server error","code":500}`, rec.Body.String())
	})
}

func TestRouter_GetMessages(t *testing.T) {
	t.Run("should answer 200 with the room listing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		messages := mocks.NewMockIMessageService(ctrl)
		messages.EXPECT().
			GetMessages(gomock.Any(), "general").
			Return(chat.GetMessagesResponse{RoomID: "general", Messages: []chat.Message{}}, nil)

		rec := serve(newTestRouter(messages, nil), http.MethodGet, "/chat/messages/general", "")

		req.Equal(http.StatusOK, rec.Code)
		req.JSONEq(`{"roomId":"general","messages":[]}`, rec.Body.String())
	})

	t.Run("should answer 500 when the store fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		messages := mocks.NewMockIMessageService(ctrl)
		messages.EXPECT().
			GetMessages(gomock.Any(), "general").
			Return(chat.GetMessagesResponse{}, errors.Store("scan", fmt.Errorf("closed")))

		rec := serve(newTestRouter(messages, nil), http.MethodGet, "/chat/messages/general", "")

		req.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func TestRouter_Middleware(t *testing.T) {
	t.Run("should answer preflight requests with 204", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)

		rec := serve(newTestRouter(mocks.NewMockIMessageService(ctrl), nil), http.MethodOptions, "/chat/messages", "")

		req.Equal(http.StatusNoContent, rec.Code)
		req.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("should recover from a panicking handler", func(t *testing.T) {
		req := require.New(t)
		handler := Recovery(slog.Default(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		rec := serve(handler, http.MethodGet, "/", "")

		req.Equal(http.StatusInternalServerError, rec.Code)
		req.JSONEq(`{"error":"Internal server error","code":500}`, rec.Body.String())
	})

	t.Run("should route health, metrics and socket", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		router := newTestRouter(mocks.NewMockIMessageService(ctrl), nil)

		for path, body := range map[string]string{"/health": "health", "/metrics": "metrics", "/ws": "socket"} {
			rec := serve(router, http.MethodGet, path, "")
			req.Equal(http.StatusOK, rec.Code, path)
			req.Equal(body, rec.Body.String(), path)
		}
	})
}

func TestRouter_DevSend(t *testing.T) {
	t.Run("should not expose the endpoint without a pusher", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)

		rec := serve(newTestRouter(mocks.NewMockIMessageService(ctrl), nil), http.MethodPost, "/dev/conn/c1/send", "{}")

		req.Equal(http.StatusNotFound, rec.Code)
	})

	t.Run("should map push outcomes to status codes", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		var pushed []byte
		outcomes := map[string]error{
			"live":    nil,
			"unknown": errors.ErrNotFound,
			"closing": fmt.Errorf("push: %w", errors.ErrGone),
			"busy":    fmt.Errorf("buffer full: %w", errors.ErrTransient),
		}
		router := newTestRouter(mocks.NewMockIMessageService(ctrl), pusherFunc(func(id string, data []byte) error {
			pushed = data
			return outcomes[id]
		}))

		expected := map[string]int{
			"live":    http.StatusOK,
			"unknown": http.StatusNotFound,
			"closing": http.StatusGone,
			"busy":    http.StatusServiceUnavailable,
		}
		for id, status := range expected {
			rec := serve(router, http.MethodPost, "/dev/conn/"+id+"/send", `{"id":"m1"}`)
			req.Equal(status, rec.Code, id)
		}
		req.JSONEq(`{"id":"m1"}`, string(pushed))
	})
}

func TestRouter_PostThenGet(t *testing.T) {
	req := require.New(t)
	// Given a router backed by real repositories
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	log := slog.Default()
	svc := services.NewMessageService(
		repositories.NewRoomRepository(db, log),
		repositories.NewMessageRepository(db, log, lo.ToPtr(25)),
		log,
	)
	router := NewRouter(Dependencies{
		Log:      log,
		Messages: svc,
		Health:   okHandler(""),
		Metrics:  okHandler(""),
		Socket:   okHandler(""),
	})

	// When two messages are posted to the same room
	for _, text := range []string{"first", "second"} {
		rec := serve(router, http.MethodPost, "/chat/messages",
			fmt.Sprintf(`{"roomId":" Lobby ","userId":"u1","username":"alice","text":%q}`, text))
		req.Equal(http.StatusCreated, rec.Code)
		// Keys sort by millisecond first
		time.Sleep(2 * time.Millisecond)
	}

	// Then the listing returns them oldest first under the normalized room
	rec := serve(router, http.MethodGet, "/chat/messages/lobby", "")
	req.Equal(http.StatusOK, rec.Code)
	var listing chat.GetMessagesResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &listing))
	req.Equal("lobby", listing.RoomID)
	req.Equal([]string{"first", "second"}, lo.Map(listing.Messages, func(m chat.Message, _ int) string { return m.Text }))
}
