package store

import (
	"context"

	"github.com/benjamonnguyen/daytrack"
)

// CompleteTask marks task id done or not done. CompletedAt is set when the
// task becomes done and cleared when it is reopened.
func (s *Store) CompleteTask(ctx context.Context, id string, done bool) (daytrack.Task, bool, error) {
	now := s.now()
	return s.Tasks.modify(ctx, id, func(t daytrack.Task) daytrack.Task {
		switch {
		case done && !t.IsCompleted:
			t.CompletedAt = &now
		case !done:
			t.CompletedAt = nil
		}
		t.IsCompleted = done
		return t
	})
}
