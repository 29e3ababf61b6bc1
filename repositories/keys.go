package repositories

import "fmt"

const (
	roomPrefix       = "room:"
	messagePrefix    = "msg:"
	connectionPrefix = "conn:"
	roomIndexPrefix  = "idx:room:"
)

// MessagePrefix is the key space the change feed subscribes to.
const MessagePrefix = messagePrefix

func roomKey(roomID string) []byte {
	return []byte(roomPrefix + roomID)
}

// messageKey is "msg:{room_id}:{ts_padded}:{uuid}". The 19-digit padding keeps
// lexicographical order equal to chronological order, the uuid separates
// messages written in the same millisecond.
func messageKey(roomID string, ts int64, id string) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s", messagePrefix, roomID, ts, id))
}

func roomMessagesPrefix(roomID string) []byte {
	return []byte(messagePrefix + roomID + ":")
}

func connectionKey(connectionID string) []byte {
	return []byte(connectionPrefix + connectionID)
}

func roomIndexKey(roomID, connectionID string) []byte {
	return []byte(roomIndexPrefix + roomID + ":" + connectionID)
}

func roomIndexPrefixFor(roomID string) []byte {
	return []byte(roomIndexPrefix + roomID + ":")
}
