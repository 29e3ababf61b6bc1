package repositories

import (
	"context"
	"encoding/json"
	"log/slog"

	"chatcast/domain/chat"
	"chatcast/errors"

	"github.com/dgraph-io/badger/v4"
)

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) RoomRepository {
	return RoomRepository{db: db, log: log}
}

// CreateIfAbsent writes the room only when its key does not exist yet.
// Two concurrent creators both read a missing key; badger aborts the second
// commit with ErrConflict, which is reported as "not created".
func (r RoomRepository) CreateIfAbsent(ctx context.Context, room chat.Room) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Store("create room", err)
	}
	bytes, err := json.Marshal(room)
	if err != nil {
		return false, errors.Store("create room", err)
	}
	created := false
	err = r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(roomKey(room.ID))
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		if err = txn.Set(roomKey(room.ID), bytes); err != nil {
			return err
		}
		created = true
		return nil
	})
	if errors.Is(err, badger.ErrConflict) {
		r.log.Debug("Room created concurrently", "room_id", room.ID)
		return false, nil
	}
	if err != nil {
		return false, errors.Store("create room", err)
	}
	return created, nil
}

// GetRoom is used by the inspection tool and tests.
func (r RoomRepository) GetRoom(roomID string) (chat.Room, error) {
	var room chat.Room
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(roomKey(roomID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &room)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chat.Room{}, errors.ErrNotFound
	}
	if err != nil {
		return chat.Room{}, errors.Store("get room", err)
	}
	return room, nil
}
