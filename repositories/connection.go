package repositories

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"

	"github.com/dgraph-io/badger/v4"
)

// ConnectionRepository is the badger-backed connection registry. Both the
// record and its room index entry carry the connection expiry as TTL, so
// leaked entries disappear on their own.
type ConnectionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConnectionRepository(db *badger.DB, log *slog.Logger) ConnectionRepository {
	return ConnectionRepository{db: db, log: log}
}

func (c ConnectionRepository) Save(ctx context.Context, conn chat.Connection) error {
	if err := ctx.Err(); err != nil {
		return errors.Store("save connection", err)
	}
	ttl := time.Until(conn.ExpiresAt)
	if ttl <= 0 {
		return errors.Validation("connection %s already expired", conn.ConnectionID)
	}
	bytes, err := json.Marshal(conn)
	if err != nil {
		return errors.Store("save connection", err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		if err := txn.SetEntry(badger.NewEntry(connectionKey(conn.ConnectionID), bytes).WithTTL(ttl)); err != nil {
			return err
		}
		return txn.SetEntry(badger.NewEntry(roomIndexKey(conn.RoomID, conn.ConnectionID), nil).WithTTL(ttl))
	})
	if err != nil {
		return errors.Store("save connection", err)
	}
	return nil
}

func (c ConnectionRepository) Get(ctx context.Context, connectionID string) (chat.Connection, error) {
	if err := ctx.Err(); err != nil {
		return chat.Connection{}, errors.Store("get connection", err)
	}
	var conn chat.Connection
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		conn, err = getConnection(txn, connectionID)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chat.Connection{}, errors.ErrNotFound
	}
	if err != nil {
		return chat.Connection{}, errors.Store("get connection", err)
	}
	return conn, nil
}

// Delete removes the record and its index entry. Deleting a missing
// connection is not an error.
func (c ConnectionRepository) Delete(ctx context.Context, connectionID string) error {
	if err := ctx.Err(); err != nil {
		return errors.Store("delete connection", err)
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		conn, err := getConnection(txn, connectionID)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = txn.Delete(roomIndexKey(conn.RoomID, connectionID)); err != nil {
			return err
		}
		return txn.Delete(connectionKey(connectionID))
	})
	if errors.Is(err, badger.ErrConflict) {
		// A concurrent delete of the same connection won
		return nil
	}
	if err != nil {
		return errors.Store("delete connection", err)
	}
	return nil
}

// FindByRoom snapshots the room index. Index entries whose record is gone
// are skipped and cleaned up afterwards.
func (c ConnectionRepository) FindByRoom(ctx context.Context, roomID string) ([]chat.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Store("find connections", err)
	}
	var connections []chat.Connection
	var orphans [][]byte
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := roomIndexPrefixFor(roomID)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			connectionID := string(key[len(prefix):])
			if strings.Contains(connectionID, ":") {
				// entry of a room whose id extends this one
				continue
			}
			conn, err := getConnection(txn, connectionID)
			if errors.Is(err, badger.ErrKeyNotFound) {
				orphans = append(orphans, key)
				continue
			}
			if err != nil {
				return err
			}
			if conn.RoomID != roomID {
				continue
			}
			connections = append(connections, conn)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Store("find connections", err)
	}
	if len(orphans) > 0 {
		c.dropOrphans(roomID, orphans)
	}
	return connections, nil
}

func (c ConnectionRepository) dropOrphans(roomID string, keys [][]byte) {
	err := c.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.log.Warn("Unable to drop orphan index entries", "room_id", roomID, "error", err)
	}
}

func getConnection(txn *badger.Txn, connectionID string) (chat.Connection, error) {
	var conn chat.Connection
	item, err := txn.Get(connectionKey(connectionID))
	if err != nil {
		return conn, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &conn)
	})
	return conn, err
}
