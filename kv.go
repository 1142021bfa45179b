package daytrack

import (
	"context"
	"errors"
	"io/fs"
	"time"
)

const (
	KeyTasks       = "tasks"
	KeyHabits      = "habits"
	KeyGoals       = "goals"
	KeyCurrentMood = "current_mood"
	KeyMoodDate    = "mood_date"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrWriteFailed = errors.New("write failed")
)

// KVStore is the blob storage the store persists through. Implementations must
// make each Put and PutMany all-or-nothing.
type KVStore interface {
	// Get returns ErrNotFound if key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, blob []byte) error
	PutMany(ctx context.Context, entries map[string][]byte) error
}

type Database interface {
	Close() error
	Migrate(fs.FS) error
}

// Record is satisfied by every entity kept in a collection.
type Record[T any] interface {
	RecordID() string
	RecordCreatedAt() time.Time
	WithIdentity(id string, createdAt time.Time) T
}
