// Package memory implements daytrack.KVStore in process memory.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/benjamonnguyen/daytrack"
)

type KVStore struct {
	mu   sync.Mutex
	data map[string][]byte

	failWrites bool
}

var _ daytrack.KVStore = (*KVStore)(nil)

func NewKVStore() *KVStore {
	return &KVStore{
		data: make(map[string][]byte),
	}
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, daytrack.ErrNotFound)
	}
	return clone(blob), nil
}

func (s *KVStore) Put(ctx context.Context, key string, blob []byte) error {
	return s.PutMany(ctx, map[string][]byte{key: blob})
}

func (s *KVStore) PutMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return errors.New("memory store is read-only")
	}
	for k, v := range entries {
		s.data[k] = clone(v)
	}
	return nil
}

// Set writes blob even while writes are failing. Tests use
// it to plant corrupt data.
func (s *KVStore) Set(key string, blob []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(blob)
}

// SetFailWrites makes every following Put and PutMany fail without touching
// stored data.
func (s *KVStore) SetFailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
