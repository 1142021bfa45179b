// Package rediskv implements daytrack.KVStore on a Redis server.
package rediskv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/benjamonnguyen/daytrack"
)

const DefaultPrefix = "daytrack:"

type KVStore struct {
	rdb    *redis.Client
	prefix string
	l      daytrack.Logger
}

var _ daytrack.KVStore = (*KVStore)(nil)

// NewKVStore namespaces every key with prefix so several stores can share a
// database.
func NewKVStore(rdb *redis.Client, prefix string, logger daytrack.Logger) *KVStore {
	return &KVStore{
		rdb:    rdb,
		prefix: prefix,
		l:      logger,
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get %q: %w", key, daytrack.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}

	s.l.Debug("got value", "key", key, "bytes", len(blob))
	return blob, nil
}

func (s *KVStore) Put(ctx context.Context, key string, blob []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, blob, 0).Err(); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	s.l.Debug("put value", "key", key, "bytes", len(blob))
	return nil
}

// PutMany sets all entries inside MULTI/EXEC.
func (s *KVStore) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, s.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put %d keys: %w", len(entries), err)
	}
	s.l.Debug("put values", "count", len(entries))
	return nil
}

func (s *KVStore) Close() error {
	return s.rdb.Close()
}
