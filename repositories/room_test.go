package repositories

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"

	"github.com/stretchr/testify/require"
)

func TestRoomRepository_CreateIfAbsent(t *testing.T) {
	t.Run("should create the room on first call only", func(t *testing.T) {
		req := require.New(t)
		repository := NewRoomRepository(openDB(t), slog.Default())
		ctx := context.Background()
		now := time.Now().UTC()

		// Given a room written once
		created, err := repository.CreateIfAbsent(ctx, chat.NewRoom("general", now))
		req.NoError(err)
		req.True(created)

		// When the same room is created again with another timestamp
		created, err = repository.CreateIfAbsent(ctx, chat.NewRoom("general", now.Add(time.Hour)))

		// Then nothing is overwritten
		req.NoError(err)
		req.False(created)
		room, err := repository.GetRoom("general")
		req.NoError(err)
		req.Equal("General", room.Name)
		req.True(now.Equal(room.CreatedAt))
	})

	t.Run("should keep a single room under concurrent first posts", func(t *testing.T) {
		req := require.New(t)
		repository := NewRoomRepository(openDB(t), slog.Default())
		ctx := context.Background()

		var wg sync.WaitGroup
		var createdCount atomic.Int32
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				created, err := repository.CreateIfAbsent(ctx, chat.NewRoom("lobby", time.Now().UTC()))
				req.NoError(err)
				if created {
					createdCount.Add(1)
				}
			}()
		}
		wg.Wait()

		req.Equal(int32(1), createdCount.Load())
		room, err := repository.GetRoom("lobby")
		req.NoError(err)
		req.Equal("lobby", room.Name)
	})

	t.Run("should return not found for a missing room", func(t *testing.T) {
		req := require.New(t)
		repository := NewRoomRepository(openDB(t), slog.Default())

		_, err := repository.GetRoom("nowhere")

		req.ErrorIs(err, errors.ErrNotFound)
	})
}
