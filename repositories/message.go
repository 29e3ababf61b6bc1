package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"chatcast/domain/chat"
	"chatcast/errors"
	"chatcast/storage"

	"github.com/dgraph-io/badger/v4"
)

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// StoreMessage persists the message as a typed-wrapper document under
// "msg:{room_id}:{ts_padded}:{uuid}".
func (m MessageRepository) StoreMessage(ctx context.Context, message chat.Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Store("store message", err)
	}
	bytes, err := storage.MessageItem(message).Marshal()
	if err != nil {
		return errors.Store("store message", err)
	}
	key := messageKey(message.RoomID, message.CreatedAt.UnixMilli(), message.ID)
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
	if err != nil {
		return errors.Store("store message", err)
	}
	return nil
}

// GetMessages returns the oldest messages of a room in ascending timestamp
// order, stopping once limitMessages is reached.
func (m MessageRepository) GetMessages(ctx context.Context, roomID string) ([]chat.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Store("get messages", err)
	}
	messages := make([]chat.Message, 0)
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := roomMessagesPrefix(roomID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			var message chat.Message
			err := it.Item().Value(func(val []byte) error {
				item, err := storage.Unmarshal(val)
				if err != nil {
					return err
				}
				message, err = storage.MessageFromItem(item)
				return err
			})
			if err != nil {
				return err
			}
			// "msg:a:" is also a prefix of room "a:b" keys
			if message.RoomID != roomID {
				continue
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Store("get messages", err)
	}
	return messages, nil
}
