package main

import (
	"fmt"
	"strings"

	"chatcast/storage"

	"github.com/mama165/sdk-go/database"
)

// ChatMapper renders chatcast records in the Badger inspector.
func ChatMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "msg:"):
		row.Type = "MESSAGE"
		item, err := storage.Unmarshal(val)
		if err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		message, err := storage.MessageFromItem(item)
		if err != nil {
			row.Detail = "Error: " + err.Error()
			return row
		}
		row.Detail = fmt.Sprintf("[%s] %s: %s", message.RoomID, message.Username, message.Text)
	case strings.HasPrefix(key, "room:"):
		row.Type = "ROOM"
	case strings.HasPrefix(key, "conn:"):
		row.Type = "CONNECTION"
	case strings.HasPrefix(key, "idx:"):
		row.Type = "INDEX"
	}
	return row
}
