package redis

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *ConnectionRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, NewConnectionRepository(client, slog.Default())
}

func connection(id, room string) chat.Connection {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return chat.Connection{
		ConnectionID: id,
		RoomID:       room,
		UserID:       "dev-user",
		Username:     "Developer",
		Transport:    chat.TransportLocal,
		PushTarget:   "http://localhost:3001/dev/conn/" + id + "/send",
		ConnectedAt:  now,
		ExpiresAt:    now.Add(24 * time.Hour),
	}
}

func TestConnectionRepository_Save_And_Get(t *testing.T) {
	req := require.New(t)
	server, repository := setup(t)
	ctx := context.Background()
	conn := connection("c1", "general")

	// When the connection is registered
	req.NoError(repository.Save(ctx, conn))

	// Then the hash and the room set exist with a TTL
	fetched, err := repository.Get(ctx, "c1")
	req.NoError(err)
	req.Equal(conn, fetched)
	req.True(server.Exists("conn:c1"))
	req.Greater(server.TTL("conn:c1"), 23*time.Hour)
	members, err := server.SMembers("room:general:conns")
	req.NoError(err)
	req.Equal([]string{"c1"}, members)
}

func TestConnectionRepository_Get_Unknown(t *testing.T) {
	req := require.New(t)
	_, repository := setup(t)

	_, err := repository.Get(context.Background(), "missing")

	req.ErrorIs(err, errors.ErrNotFound)
}

func TestConnectionRepository_FindByRoom(t *testing.T) {
	req := require.New(t)
	_, repository := setup(t)
	ctx := context.Background()
	req.NoError(repository.Save(ctx, connection("c1", "general")))
	req.NoError(repository.Save(ctx, connection("c2", "general")))
	req.NoError(repository.Save(ctx, connection("c3", "random")))

	connections, err := repository.FindByRoom(ctx, "general")

	req.NoError(err)
	ids := lo.Map(connections, func(c chat.Connection, _ int) string { return c.ConnectionID })
	req.ElementsMatch([]string{"c1", "c2"}, ids)
}

func TestConnectionRepository_Delete_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	server, repository := setup(t)
	ctx := context.Background()
	req.NoError(repository.Save(ctx, connection("c1", "general")))

	req.NoError(repository.Delete(ctx, "c1"))
	req.NoError(repository.Delete(ctx, "c1"))

	req.False(server.Exists("conn:c1"))
	connections, err := repository.FindByRoom(ctx, "general")
	req.NoError(err)
	req.Empty(connections)
}

func TestConnectionRepository_Drops_Expired_Members(t *testing.T) {
	req := require.New(t)
	server, repository := setup(t)
	ctx := context.Background()
	req.NoError(repository.Save(ctx, connection("c1", "general")))

	// Given the hash expired but the member is still in the set
	server.Del("conn:c1")

	// When the room is looked up
	connections, err := repository.FindByRoom(ctx, "general")

	// Then the stale member is gone as well
	req.NoError(err)
	req.Empty(connections)
	members, _ := server.SMembers("room:general:conns")
	req.Empty(members)
}

func TestConnectionRepository_Rejects_Expired_Connection(t *testing.T) {
	req := require.New(t)
	_, repository := setup(t)
	conn := connection("c1", "general")
	conn.ExpiresAt = time.Now().Add(-time.Minute)

	err := repository.Save(context.Background(), conn)

	req.ErrorIs(err, errors.ErrValidation)
}
