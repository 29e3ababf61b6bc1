package storage

import (
	"fmt"
	"time"

	"chatcast/domain/chat"
	"chatcast/errors"
)

const (
	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldUserID          = "user_id"
	FieldUsername        = "username"
	FieldMessageText     = "message_text"
	FieldTimestamp       = "ts"
	FieldCreatedAtISO    = "created_at_iso"
	FieldClientMessageID = "client_message_id"
)

func MessageItem(m chat.Message) Item {
	item := Item{
		FieldID:           S(m.ID),
		FieldRoomID:       S(m.RoomID),
		FieldUserID:       S(m.UserID),
		FieldUsername:     S(m.Username),
		FieldMessageText:  S(m.Text),
		FieldTimestamp:    N(m.CreatedAt.UnixMilli()),
		FieldCreatedAtISO: S(m.CreatedAt.Format(time.RFC3339Nano)),
	}
	if m.ClientMessageID != nil {
		item[FieldClientMessageID] = S(*m.ClientMessageID)
	}
	return item
}

// MessageFromItem rebuilds a message from its stored image. id, room_id,
// username, message_text and ts are required; user_id defaults to
// "unknown" for records written before it existed.
func MessageFromItem(item Item) (chat.Message, error) {
	var m chat.Message
	var ok bool
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{FieldRoomID, &m.RoomID},
		{FieldID, &m.ID},
		{FieldUsername, &m.Username},
		{FieldMessageText, &m.Text},
	} {
		if *f.dst, ok = item.String(f.name); !ok {
			return chat.Message{}, fmt.Errorf("%w: missing %s", errors.ErrMalformedRecord, f.name)
		}
	}
	ts, ok := item.Int64(FieldTimestamp)
	if !ok {
		return chat.Message{}, fmt.Errorf("%w: missing or invalid %s", errors.ErrMalformedRecord, FieldTimestamp)
	}
	m.CreatedAt = time.UnixMilli(ts).UTC()
	if m.UserID, ok = item.String(FieldUserID); !ok {
		m.UserID = chat.UnknownUserID
	}
	m.ClientMessageID = item.StringPtr(FieldClientMessageID)
	return m, nil
}
