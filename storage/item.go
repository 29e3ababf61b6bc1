// Package storage defines the document format shared by the store and its
// change feed: a record keyed by field name whose values are typed scalar
// wrappers, either a string ("S") or a numeric string ("N").
package storage

import (
	"encoding/json"
	"strconv"
)

type AttributeValue struct {
	S *string `json:"S,omitempty"`
	N *string `json:"N,omitempty"`
}

func S(v string) AttributeValue {
	return AttributeValue{S: &v}
}

func N(v int64) AttributeValue {
	n := strconv.FormatInt(v, 10)
	return AttributeValue{N: &n}
}

type Item map[string]AttributeValue

// String returns the string value of a field. Numeric fields are not
// coerced.
func (i Item) String(name string) (string, bool) {
	v, ok := i[name]
	if !ok || v.S == nil {
		return "", false
	}
	return *v.S, true
}

// Int64 parses a numeric field.
func (i Item) Int64(name string) (int64, bool) {
	v, ok := i[name]
	if !ok || v.N == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(*v.N, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// StringPtr returns nil for a missing field.
func (i Item) StringPtr(name string) *string {
	s, ok := i.String(name)
	if !ok {
		return nil
	}
	return &s
}

func (i Item) Marshal() ([]byte, error) {
	return json.Marshal(i)
}

func Unmarshal(data []byte) (Item, error) {
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return item, nil
}
