package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chatcast/domain/chat"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newMessage(room, username string, at time.Time) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		RoomID:    room,
		UserID:    "u-" + username,
		Username:  username,
		Text:      "this message will self destruct in 5 seconds",
		CreatedAt: at.Truncate(time.Millisecond),
	}
}

func Test_Record_Multiple_Message(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	at := time.Now().UTC()

	// Given messages stored out of order
	messages := []chat.Message{
		newMessage("general", "Clara", at.Add(2*time.Minute)),
		newMessage("general", "Alice", at),
		newMessage("general", "Bob", at.Add(1*time.Minute)),
	}
	messages[1].ClientMessageID = lo.ToPtr("c-1")
	for _, m := range messages {
		req.NoError(repository.StoreMessage(ctx, m))
	}

	// When reading the room
	fetched, err := repository.GetMessages(ctx, "general")

	// Then they come back oldest first
	req.NoError(err)
	req.Equal([]chat.Message{messages[1], messages[2], messages[0]}, fetched)
}

func Test_Record_Multiple_Message_And_Limit(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openDB(t), slog.Default(), lo.ToPtr(25))
	at := time.Now().UTC()

	for i := 0; i < 30; i++ {
		req.NoError(repository.StoreMessage(ctx, newMessage("general", fmt.Sprintf("user%d", i), at.Add(time.Duration(i)*time.Second))))
	}

	fetched, err := repository.GetMessages(ctx, "general")
	req.NoError(err)
	req.Len(fetched, 25)
	// The oldest 25 are kept
	req.Equal("user0", fetched[0].Username)
	req.Equal("user24", fetched[24].Username)
	for i := 1; i < len(fetched); i++ {
		req.False(fetched[i].CreatedAt.Before(fetched[i-1].CreatedAt))
	}
}

func Test_Get_Messages_Of_Empty_Room(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), lo.ToPtr(25))

	fetched, err := repository.GetMessages(context.Background(), "empty")

	req.NoError(err)
	req.NotNil(fetched)
	req.Empty(fetched)
}

func Test_Get_Messages_Ignores_Rooms_Sharing_A_Prefix(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	at := time.Now().UTC()

	req.NoError(repository.StoreMessage(ctx, newMessage("a", "Alice", at)))
	req.NoError(repository.StoreMessage(ctx, newMessage("a:b", "Bob", at)))

	fetched, err := repository.GetMessages(ctx, "a")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("Alice", fetched[0].Username)
}
