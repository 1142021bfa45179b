// Package codec converts collections and mood scalars to and from the JSON
// blobs kept in a daytrack.KVStore.
//
// Decoding never fails: missing or malformed input yields the zero value
// together with ok=false so callers can log it.
package codec

import (
	"encoding/json"
	"time"
)

func EncodeList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// DecodeList returns an empty, non-nil slice when blob is empty or invalid.
func DecodeList[T any](blob []byte) ([]T, bool) {
	if len(blob) == 0 {
		return []T{}, false
	}
	var items []T
	if err := json.Unmarshal(blob, &items); err != nil || items == nil {
		return []T{}, false
	}
	return items, true
}

func EncodeString(s string) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeString(blob []byte) (string, bool) {
	var s string
	if len(blob) == 0 {
		return "", false
	}
	if err := json.Unmarshal(blob, &s); err != nil {
		return "", false
	}
	return s, true
}

// EncodeTime writes t in RFC 3339 with nanoseconds, so it keeps sub-millisecond
// precision and the zone offset.
func EncodeTime(t time.Time) ([]byte, error) {
	return json.Marshal(t)
}

func DecodeTime(blob []byte) (time.Time, bool) {
	var t time.Time
	if len(blob) == 0 {
		return time.Time{}, false
	}
	if err := json.Unmarshal(blob, &t); err != nil {
		return time.Time{}, false
	}
	return t, true
}
