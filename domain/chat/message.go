// Package chat contains the core records of the chat backend: rooms,
// messages and the live connections subscribed to a room.
package chat

import "time"

const (
	MaxUsernameLength = 50
	MaxTextLength     = 500
	UnknownUserID     = "unknown"
)

// Message is immutable once persisted.
type Message struct {
	ID              string    `json:"id"`
	RoomID          string    `json:"roomId"`
	UserID          string    `json:"userId"`
	Username        string    `json:"username"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"createdAt"`
	ClientMessageID *string   `json:"clientMessageId,omitempty"`
}

type SendMessageRequest struct {
	RoomID          string  `json:"roomId"`
	UserID          string  `json:"userId"`
	Username        string  `json:"username"`
	Text            string  `json:"text"`
	ClientMessageID *string `json:"clientMessageId,omitempty"`
}

type GetMessagesResponse struct {
	RoomID   string    `json:"roomId"`
	Messages []Message `json:"messages"`
}
