package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItem_TypedAccessors(t *testing.T) {
	req := require.New(t)
	item := Item{
		"id":  S("m-1"),
		"ts":  N(1700000000123),
		"bad": {N: ptr("12abc")},
	}

	id, ok := item.String("id")
	req.True(ok)
	req.Equal("m-1", id)

	ts, ok := item.Int64("ts")
	req.True(ok)
	req.Equal(int64(1700000000123), ts)

	_, ok = item.String("ts")
	req.False(ok, "numeric values are not read as strings")

	_, ok = item.Int64("bad")
	req.False(ok)

	req.Nil(item.StringPtr("missing"))
}

func TestItem_WireFormat(t *testing.T) {
	req := require.New(t)
	data := []byte(`{"room_id":{"S":"general"},"ts":{"N":"42"}}`)

	item, err := Unmarshal(data)
	req.NoError(err)

	room, _ := item.String("room_id")
	req.Equal("general", room)
	ts, _ := item.Int64("ts")
	req.Equal(int64(42), ts)

	_, err = Unmarshal([]byte("not json"))
	req.Error(err)
}

func ptr(s string) *string { return &s }
