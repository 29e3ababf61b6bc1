package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"chatcast/contract"
	"chatcast/domain/chat"

	"github.com/google/uuid"
)

type MessageService struct {
	rooms    contract.IRoomRepository
	messages contract.IMessageRepository
	log      *slog.Logger
	now      func() time.Time
}

func NewMessageService(rooms contract.IRoomRepository, messages contract.IMessageRepository, log *slog.Logger) *MessageService {
	return &MessageService{rooms: rooms, messages: messages, log: log, now: time.Now}
}

// PostMessage validates the request, makes sure the room exists and persists
// the message. Broadcasting is left to the change feed.
func (s *MessageService) PostMessage(ctx context.Context, req chat.SendMessageRequest) (chat.Message, error) {
	// 1. Trim and bound check before touching the store
	validated, err := chat.ValidateSendMessage(req)
	if err != nil {
		return chat.Message{}, err
	}
	now := s.now().UTC().Truncate(time.Millisecond)

	// 2. The room must exist before its first message is written
	created, err := s.rooms.CreateIfAbsent(ctx, chat.NewRoom(validated.RoomID, now))
	if err != nil {
		s.log.Error("Unable to create room", "room_id", validated.RoomID, "error", err)
		return chat.Message{}, err
	}
	if created {
		s.log.Info("Room created", "room_id", validated.RoomID)
	}

	userID := strings.TrimSpace(validated.UserID)
	if userID == "" {
		userID = chat.UnknownUserID
	}
	message := chat.Message{
		ID:              uuid.NewString(),
		RoomID:          validated.RoomID,
		UserID:          userID,
		Username:        validated.Username,
		Text:            validated.Text,
		CreatedAt:       now,
		ClientMessageID: req.ClientMessageID,
	}

	// 3. Persist, the insert is picked up by the dispatcher
	if err = s.messages.StoreMessage(ctx, message); err != nil {
		s.log.Error("Unable to store message", "room_id", message.RoomID, "error", err)
		return chat.Message{}, err
	}
	s.log.Info("Message posted", "room_id", message.RoomID, "message_id", message.ID)
	return message, nil
}

func (s *MessageService) GetMessages(ctx context.Context, roomID string) (chat.GetMessagesResponse, error) {
	normalized, err := chat.NormalizeRoomID(roomID)
	if err != nil {
		return chat.GetMessagesResponse{}, err
	}
	messages, err := s.messages.GetMessages(ctx, normalized)
	if err != nil {
		s.log.Error("Unable to read messages", "room_id", normalized, "error", err)
		return chat.GetMessagesResponse{}, err
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	s.log.Info("Messages retrieved", "room_id", normalized, "count", len(messages))
	return chat.GetMessagesResponse{RoomID: normalized, Messages: messages}, nil
}
