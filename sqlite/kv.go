package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Thiht/transactor"
	txStdLib "github.com/Thiht/transactor/stdlib"

	"github.com/benjamonnguyen/daytrack"
)

type kvEntity struct {
	Key       string
	Value     []byte
	UpdatedAt int64
}

// KVStore keeps one row per key in the kv table.
type KVStore struct {
	transactor transactor.Transactor
	dbGetter   txStdLib.DBGetter
	l          daytrack.Logger
}

var _ daytrack.KVStore = (*KVStore)(nil)

func NewKVStore(db *Database, logger daytrack.Logger) *KVStore {
	tx, dbGetter := txStdLib.NewTransactor(db.DB(), txStdLib.NestedTransactionsSavepoints)
	return &KVStore{
		transactor: tx,
		dbGetter:   dbGetter,
		l:          logger,
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("provide key")
	}

	row := s.dbGetter(ctx).QueryRowContext(
		ctx,
		"SELECT key, value, updated_at FROM kv WHERE key=?", key,
	)
	e, err := extractKV(row)
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}

	s.l.Debug("got value", "key", key, "bytes", len(e.Value))
	return e.Value, nil
}

func (s *KVStore) Put(ctx context.Context, key string, blob []byte) error {
	return s.PutMany(ctx, map[string][]byte{key: blob})
}

// PutMany upserts all entries in one transaction.
func (s *KVStore) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		if k == "" {
			return fmt.Errorf("provide key")
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	now := time.Now().UnixMilli()
	args := make([]any, 0, len(keys)*3)
	for _, k := range keys {
		e := kvEntity{
			Key:       k,
			Value:     entries[k],
			UpdatedAt: now,
		}
		if e.Value == nil {
			e.Value = []byte{}
		}
		args = append(args, e.Key, e.Value, e.UpdatedAt)
	}

	query := "INSERT INTO kv (key, value, updated_at) VALUES " + generateRows(len(keys), 3) +
		" ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at"
	s.l.Debug("putting values", "query", query, "keys", keys)

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.dbGetter(ctx).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("put %v: %w", keys, err)
		}
		return nil
	})
}

func extractKV(s scannable) (kvEntity, error) {
	var e kvEntity
	if err := s.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kvEntity{}, daytrack.ErrNotFound
		}
		return kvEntity{}, err
	}
	return e, nil
}
