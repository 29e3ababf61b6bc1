package workers

import (
	"context"
	"log/slog"

	"chatcast/contract"
	"chatcast/domain/event"
	"chatcast/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
)

// ChangeFeedWorker subscribes to message writes and hands every batch to the
// dispatcher. Message keys are never overwritten, so every write with a
// value is an insert and every write without one is a removal.
type ChangeFeedWorker struct {
	db         *badger.DB
	dispatcher contract.IDispatcher
	log        *slog.Logger
	prefix     []byte
}

func NewChangeFeedWorker(db *badger.DB, dispatcher contract.IDispatcher, log *slog.Logger, prefix string) *ChangeFeedWorker {
	return &ChangeFeedWorker{db: db, dispatcher: dispatcher, log: log, prefix: []byte(prefix)}
}

// Run blocks until ctx is cancelled or the subscription fails.
func (w *ChangeFeedWorker) Run(ctx context.Context) error {
	w.log.Info("Starting change feed", "prefix", string(w.prefix))
	return w.db.Subscribe(ctx, func(list *badger.KVList) error {
		records := w.toRecords(list.GetKv())
		if len(records) == 0 {
			return nil
		}
		for _, outcome := range w.dispatcher.Dispatch(ctx, records) {
			if outcome.Err != nil {
				w.log.Warn("Change record failed", "message_id", outcome.MessageID, "room_id", outcome.RoomID, "error", outcome.Err)
			}
		}
		return nil
	}, []pb.Match{{Prefix: w.prefix}})
}

func (w *ChangeFeedWorker) toRecords(kvs []*pb.KV) []event.Record {
	records := make([]event.Record, 0, len(kvs))
	for _, kv := range kvs {
		if kv.GetStreamDone() {
			continue
		}
		if len(kv.GetValue()) == 0 {
			records = append(records, event.Record{EventName: event.Remove})
			continue
		}
		item, err := storage.Unmarshal(kv.GetValue())
		if err != nil {
			// Kept as an insert without image so the dispatcher reports it
			w.log.Warn("Unreadable change value", "key", string(kv.GetKey()), "error", err)
			item = storage.Item{}
		}
		records = append(records, event.Record{EventName: event.Insert, NewImage: item})
	}
	return records
}
