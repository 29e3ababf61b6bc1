//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatcast/domain/chat"
	"chatcast/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type IRoomRepository interface {
	// CreateIfAbsent reports whether this call created the room.
	CreateIfAbsent(ctx context.Context, room chat.Room) (bool, error)
}

type IMessageRepository interface {
	StoreMessage(ctx context.Context, message chat.Message) error
	GetMessages(ctx context.Context, roomID string) ([]chat.Message, error)
}

// IConnectionRepository is the connection registry. Delete of a missing key
// is a no-op; Get returns errors.ErrNotFound.
type IConnectionRepository interface {
	Save(ctx context.Context, conn chat.Connection) error
	Get(ctx context.Context, connectionID string) (chat.Connection, error)
	Delete(ctx context.Context, connectionID string) error
	FindByRoom(ctx context.Context, roomID string) ([]chat.Connection, error)
}

// IGatewaySink pushes bytes to a gateway connection. It returns an error
// wrapping errors.ErrGone when the connection no longer exists.
type IGatewaySink interface {
	Deliver(ctx context.Context, connectionID string, data []byte) error
}

// ILocalSink posts a JSON payload to a loopback push target and returns the
// HTTP status it answered with.
type ILocalSink interface {
	Deliver(ctx context.Context, pushTarget string, payload []byte) (int, error)
}

type IMetrics interface {
	EmitCount(name string, value float64, dimensions map[string]string)
	EmitGauge(name string, value float64, dimensions map[string]string)
	EmitDurationMs(name string, d time.Duration, dimensions map[string]string)
	EmitMessageSent(roomID string, length int)
	EmitConnectionEvent(eventType, roomID string)
	EmitBroadcast(roomID string, attempts, successes int)
}

type IDispatcher interface {
	Dispatch(ctx context.Context, records []event.Record) []event.Outcome
}

type IMessageService interface {
	PostMessage(ctx context.Context, req chat.SendMessageRequest) (chat.Message, error)
	GetMessages(ctx context.Context, roomID string) (chat.GetMessagesResponse, error)
}

type IConnectionService interface {
	OnConnect(ctx context.Context, req chat.ConnectRequest) string
	OnDisconnect(ctx context.Context, connectionID string)
}
