package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/benjamonnguyen/daytrack"
	"github.com/benjamonnguyen/daytrack/codec"
)

// Repository keeps one collection under a single key. Every call reads the
// whole collection and every mutation writes it back whole, holding the
// repository lock for the full cycle.
type Repository[T daytrack.Record[T]] struct {
	mu  sync.Mutex
	key string
	kv  daytrack.KVStore
	l   daytrack.Logger

	now   func() time.Time
	newID func() string

	// normalize runs on every record before it is written. prev is the stored
	// version on update and nil on add.
	normalize func(next T, prev *T) T
}

func newRepository[T daytrack.Record[T]](key string, kv daytrack.KVStore, logger daytrack.Logger, o options) *Repository[T] {
	return &Repository[T]{
		key:   key,
		kv:    kv,
		l:     logger,
		now:   o.now,
		newID: o.newID,
	}
}

// List returns the collection in persisted order. A missing or corrupt blob
// reads as an empty collection; only storage read errors are returned.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Add stores candidate under a fresh id at the end of the collection. A zero
// CreatedAt is set to the current time.
func (r *Repository[T]) Add(ctx context.Context, candidate T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}

	id := r.newID()
	for slices.ContainsFunc(items, func(item T) bool { return item.RecordID() == id }) {
		id = r.newID()
	}
	createdAt := candidate.RecordCreatedAt()
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	added := candidate.WithIdentity(id, createdAt)
	if r.normalize != nil {
		added = r.normalize(added, nil)
	}

	if err := r.save(ctx, append(items, added)); err != nil {
		return zero, err
	}
	r.l.Debug("added record", "key", r.key, "id", id)
	return added, nil
}

// Update replaces the first record sharing record's id, keeping its position.
// An unknown id is ignored.
func (r *Repository[T]) Update(ctx context.Context, record T) error {
	_, _, err := r.modify(ctx, record.RecordID(), func(T) T {
		return record
	})
	return err
}

// Delete removes every record with id. An unknown id is ignored.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	remaining := slices.DeleteFunc(slices.Clone(items), func(item T) bool {
		return item.RecordID() == id
	})
	if len(remaining) == len(items) {
		r.l.Debug("nothing to delete", "key", r.key, "id", id)
		return nil
	}

	if err := r.save(ctx, remaining); err != nil {
		return err
	}
	r.l.Debug("deleted record", "key", r.key, "id", id, "removed", len(items)-len(remaining))
	return nil
}

// Clear replaces the collection with an empty one. The write happens even
// when the collection is already empty.
func (r *Repository[T]) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(ctx, []T{}); err != nil {
		return err
	}
	r.l.Debug("cleared collection", "key", r.key)
	return nil
}

// modify applies fn to the first record with id and persists the result. It
// reports false without writing when no record has id. The id and creation
// time of the stored record survive whatever fn returns.
func (r *Repository[T]) modify(ctx context.Context, id string, fn func(T) T) (T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	items, err := r.load(ctx)
	if err != nil {
		return zero, false, err
	}
	i := slices.IndexFunc(items, func(item T) bool { return item.RecordID() == id })
	if i == -1 {
		r.l.Debug("nothing to update", "key", r.key, "id", id)
		return zero, false, nil
	}

	prev := items[i]
	next := fn(prev).WithIdentity(prev.RecordID(), prev.RecordCreatedAt())
	if r.normalize != nil {
		next = r.normalize(next, &prev)
	}
	items[i] = next

	if err := r.save(ctx, items); err != nil {
		return zero, false, err
	}
	r.l.Debug("updated record", "key", r.key, "id", id)
	return next, true, nil
}

func (r *Repository[T]) load(ctx context.Context) ([]T, error) {
	blob, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, daytrack.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", r.key, err)
	}

	items, ok := codec.DecodeList[T](blob)
	if !ok && len(blob) > 0 {
		r.l.Warn("discarding undecodable collection", "key", r.key, "bytes", len(blob))
	}
	r.l.Debug("loaded collection", "key", r.key, "count", len(items))
	return items, nil
}

func (r *Repository[T]) save(ctx context.Context, items []T) error {
	blob, err := codec.EncodeList(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	if err := r.kv.Put(ctx, r.key, blob); err != nil {
		r.l.Error("failed to persist collection", "key", r.key, "error", err)
		return fmt.Errorf("failed to persist %s: %w: %w", r.key, daytrack.ErrWriteFailed, err)
	}
	return nil
}
