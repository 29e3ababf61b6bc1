package chat

import (
	"strings"
	"time"

	"chatcast/errors"
)

const (
	DefaultRoomID = "general"
	UnknownRoomID = "unknown"
)

type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRoom builds the record written on the first post to a room.
func NewRoom(id string, now time.Time) Room {
	name := id
	if id == DefaultRoomID {
		name = "General"
	}
	return Room{ID: id, Name: name, CreatedAt: now}
}

// NormalizeRoomID trims and lowercases a room id. Blank ids are rejected.
func NormalizeRoomID(roomID string) (string, error) {
	trimmed := strings.TrimSpace(roomID)
	if trimmed == "" {
		return "", errors.Validation("room ID cannot be empty")
	}
	return strings.ToLower(trimmed), nil
}

// ResolveRoomID normalizes a socket room parameter, falling back to the
// default room when it is blank.
func ResolveRoomID(roomID string) string {
	normalized, err := NormalizeRoomID(roomID)
	if err != nil {
		return DefaultRoomID
	}
	return normalized
}
