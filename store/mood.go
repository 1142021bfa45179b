package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benjamonnguyen/daytrack"
	"github.com/benjamonnguyen/daytrack/codec"
)

type moodTracker struct {
	mu sync.Mutex
	kv daytrack.KVStore
	l  daytrack.Logger
}

// SetMood replaces the current mood, stamped with the current time.
func (s *Store) SetMood(ctx context.Context, value string) error {
	return s.SetMoodAt(ctx, value, s.now())
}

// SetMoodAt writes value and now together; either both keys change or
// neither does.
func (s *Store) SetMoodAt(ctx context.Context, value string, now time.Time) error {
	return s.mood.set(ctx, value, now)
}

// GetMood reports false when no mood has been set or either half of it
// cannot be decoded.
func (s *Store) GetMood(ctx context.Context) (daytrack.Mood, bool, error) {
	return s.mood.get(ctx)
}

func (m *moodTracker) set(ctx context.Context, value string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	valueBlob, err := codec.EncodeString(value)
	if err != nil {
		return fmt.Errorf("failed to encode mood: %w", err)
	}
	dateBlob, err := codec.EncodeTime(now)
	if err != nil {
		return fmt.Errorf("failed to encode mood date: %w", err)
	}

	if err := m.kv.PutMany(ctx, map[string][]byte{
		daytrack.KeyCurrentMood: valueBlob,
		daytrack.KeyMoodDate:    dateBlob,
	}); err != nil {
		m.l.Error("failed to persist mood", "error", err)
		return fmt.Errorf("failed to persist mood: %w: %w", daytrack.ErrWriteFailed, err)
	}
	m.l.Debug("set mood", "mood", value, "at", now)
	return nil
}

func (m *moodTracker) get(ctx context.Context) (daytrack.Mood, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	valueBlob, err := m.kv.Get(ctx, daytrack.KeyCurrentMood)
	if errors.Is(err, daytrack.ErrNotFound) {
		return daytrack.Mood{}, false, nil
	}
	if err != nil {
		return daytrack.Mood{}, false, fmt.Errorf("failed to load mood: %w", err)
	}
	dateBlob, err := m.kv.Get(ctx, daytrack.KeyMoodDate)
	if errors.Is(err, daytrack.ErrNotFound) {
		return daytrack.Mood{}, false, nil
	}
	if err != nil {
		return daytrack.Mood{}, false, fmt.Errorf("failed to load mood date: %w", err)
	}

	value, ok := codec.DecodeString(valueBlob)
	if !ok {
		m.l.Warn("discarding undecodable mood", "bytes", len(valueBlob))
		return daytrack.Mood{}, false, nil
	}
	setAt, ok := codec.DecodeTime(dateBlob)
	if !ok {
		m.l.Warn("discarding undecodable mood date", "bytes", len(dateBlob))
		return daytrack.Mood{}, false, nil
	}

	return daytrack.Mood{
		Value: value,
		SetAt: setAt,
	}, true, nil
}
