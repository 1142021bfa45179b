package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/benjamonnguyen/daytrack"
)

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, daytrack.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	blob := []byte("v1")
	if err := s.Put(ctx, "k", blob); err != nil {
		t.Fatal(err)
	}
	blob[0] = 'x'

	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != "v1" {
		t.Errorf("expected stored copy v1, got %q (%v)", got, err)
	}

	s.SetFailWrites(true)
	if err := s.PutMany(ctx, map[string][]byte{"k": []byte("v2"), "j": []byte("v2")}); err == nil {
		t.Error("expected write failure")
	}
	if got, _ := s.Get(ctx, "k"); string(got) != "v1" {
		t.Errorf("expected failed write to leave v1, got %q", got)
	}
	if _, err := s.Get(ctx, "j"); !errors.Is(err, daytrack.ErrNotFound) {
		t.Errorf("expected failed write to leave j unset, got %v", err)
	}
}
