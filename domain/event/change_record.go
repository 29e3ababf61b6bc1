// Package event describes the change records the broadcast dispatcher
// consumes and the payload it pushes to subscribers.
package event

import (
	"time"

	"chatcast/storage"
)

type Name string

const (
	Insert Name = "INSERT"
	Modify Name = "MODIFY"
	Remove Name = "REMOVE"
)

// Record is one entry of a change batch. Only Insert records carry a
// message worth broadcasting.
type Record struct {
	EventName Name         `json:"eventName"`
	NewImage  storage.Item `json:"newImage,omitempty"`
}

func (r Record) Actionable() bool {
	return r.EventName == Insert
}

// ChatMessage is the JSON frame written to subscribers.
type ChatMessage struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"roomId"`
	UserID          string  `json:"userId"`
	Username        string  `json:"username"`
	Text            string  `json:"text"`
	CreatedAt       string  `json:"createdAt"`
	ClientMessageID *string `json:"clientMessageId,omitempty"`
}

// ToChatMessage decodes a message image into the outbound payload. The
// timestamp is derived from the stored epoch millis.
func ToChatMessage(image storage.Item) (ChatMessage, error) {
	m, err := storage.MessageFromItem(image)
	if err != nil {
		return ChatMessage{}, err
	}
	return ChatMessage{
		ID:              m.ID,
		RoomID:          m.RoomID,
		UserID:          m.UserID,
		Username:        m.Username,
		Text:            m.Text,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339Nano),
		ClientMessageID: m.ClientMessageID,
	}, nil
}

// Outcome is the result of dispatching one record of a batch.
type Outcome struct {
	EventName Name
	MessageID string
	RoomID    string
	Skipped   bool
	Attempts  int
	Successes int
	Pruned    int
	Err       error
}

func (o Outcome) Failures() int {
	return o.Attempts - o.Successes
}
