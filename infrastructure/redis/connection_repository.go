package redis

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"

	goredis "github.com/redis/go-redis/v9"
)

// ConnectionRepository keeps the connection registry in Redis: one hash per
// connection and one set of connection ids per room. Both carry the
// connection expiry, set members whose hash expired are removed lazily on
// lookup.
type ConnectionRepository struct {
	rdb       goredis.UniversalClient
	log       *slog.Logger
	opTimeout time.Duration

	saveScript   *goredis.Script
	deleteScript *goredis.Script
}

const saveConnectionLua = `
-- KEYS[1] = connKey
-- KEYS[2] = roomKey
-- ARGV[1] = connectionID
-- ARGV[2] = ttlMs
-- ARGV[3..] = field/value pairs

redis.call('HSET', KEYS[1], unpack(ARGV, 3))
redis.call('PEXPIRE', KEYS[1], ARGV[2])

redis.call('SADD', KEYS[2], ARGV[1])
local ttl = tonumber(ARGV[2])
if redis.call('PTTL', KEYS[2]) < ttl then
  redis.call('PEXPIRE', KEYS[2], ttl)
end

return 1
`

const deleteConnectionLua = `
-- KEYS[1] = connKey
-- ARGV[1] = connectionID
-- ARGV[2] = roomKeyPrefix

local room = redis.call('HGET', KEYS[1], 'roomId')
if room then
  redis.call('SREM', ARGV[2] .. room .. ':conns', ARGV[1])
end
return redis.call('DEL', KEYS[1])
`

const (
	connKeyPrefix = "conn:"
	roomKeyPrefix = "room:"
)

func connKey(connectionID string) string {
	return connKeyPrefix + connectionID
}

func roomKey(roomID string) string {
	return fmt.Sprintf("%s%s:conns", roomKeyPrefix, roomID)
}

func NewClient(addr, password string, db int) *goredis.Client {
	poolSize := runtime.GOMAXPROCS(0) * 16
	if poolSize < 32 {
		poolSize = 32
	}
	if poolSize > 128 {
		poolSize = 128
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		PoolSize:     poolSize,
		MinIdleConns: poolSize / 4,
		PoolTimeout:  1 * time.Second,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		MaxRetries:      1,
		MinRetryBackoff: 25 * time.Millisecond,
		MaxRetryBackoff: 250 * time.Millisecond,
	})
}

func NewConnectionRepository(rdb goredis.UniversalClient, log *slog.Logger) *ConnectionRepository {
	return &ConnectionRepository{
		rdb:          rdb,
		log:          log,
		opTimeout:    5 * time.Second,
		saveScript:   goredis.NewScript(saveConnectionLua),
		deleteScript: goredis.NewScript(deleteConnectionLua),
	}
}

func (c *ConnectionRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

func (c *ConnectionRepository) Save(ctx context.Context, conn chat.Connection) error {
	ttlMs := time.Until(conn.ExpiresAt).Milliseconds()
	if ttlMs <= 0 {
		return errors.Validation("connection %s already expired", conn.ConnectionID)
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	args := append([]any{conn.ConnectionID, ttlMs}, toFields(conn)...)
	err := c.saveScript.Run(ctx, c.rdb, []string{connKey(conn.ConnectionID), roomKey(conn.RoomID)}, args...).Err()
	if err != nil {
		return errors.Store("save connection", err)
	}
	return nil
}

func (c *ConnectionRepository) Get(ctx context.Context, connectionID string) (chat.Connection, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	fields, err := c.rdb.HGetAll(ctx, connKey(connectionID)).Result()
	if err != nil {
		return chat.Connection{}, errors.Store("get connection", err)
	}
	if len(fields) == 0 {
		return chat.Connection{}, errors.ErrNotFound
	}
	return fromFields(fields), nil
}

func (c *ConnectionRepository) Delete(ctx context.Context, connectionID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err := c.deleteScript.Run(ctx, c.rdb, []string{connKey(connectionID)}, connectionID, roomKeyPrefix).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return errors.Store("delete connection", err)
	}
	return nil
}

func (c *ConnectionRepository) FindByRoom(ctx context.Context, roomID string) ([]chat.Connection, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	ids, err := c.rdb.SMembers(ctx, roomKey(roomID)).Result()
	if err != nil {
		return nil, errors.Store("find connections", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := c.rdb.Pipeline()
	cmds := make([]*goredis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, connKey(id))
	}
	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Store("find connections", err)
	}

	connections := make([]chat.Connection, 0, len(ids))
	var expired []any
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			expired = append(expired, ids[i])
			continue
		}
		connections = append(connections, fromFields(fields))
	}
	if len(expired) > 0 {
		if err = c.rdb.SRem(ctx, roomKey(roomID), expired...).Err(); err != nil {
			c.log.Warn("Unable to drop expired members", "room_id", roomID, "error", err)
		}
	}
	return connections, nil
}

func (c *ConnectionRepository) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func toFields(conn chat.Connection) []any {
	return []any{
		"connectionId", conn.ConnectionID,
		"roomId", conn.RoomID,
		"userId", conn.UserID,
		"username", conn.Username,
		"transport", string(conn.Transport),
		"pushTarget", conn.PushTarget,
		"connectedAt", conn.ConnectedAt.UnixMilli(),
		"expiresAt", conn.ExpiresAt.UnixMilli(),
	}
}

func fromFields(fields map[string]string) chat.Connection {
	return chat.Connection{
		ConnectionID: fields["connectionId"],
		RoomID:       fields["roomId"],
		UserID:       fields["userId"],
		Username:     fields["username"],
		Transport:    chat.Transport(fields["transport"]),
		PushTarget:   fields["pushTarget"],
		ConnectedAt:  parseMillis(fields["connectedAt"]),
		ExpiresAt:    parseMillis(fields["expiresAt"]),
	}
}

func parseMillis(v string) time.Time {
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
