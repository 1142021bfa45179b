package store

import (
	"context"
	"time"

	"github.com/benjamonnguyen/daytrack"
)

// TrackHabit records a completion of habit id at the current time.
func (s *Store) TrackHabit(ctx context.Context, id string) (daytrack.Habit, bool, error) {
	return s.TrackHabitAt(ctx, id, s.now())
}

// TrackHabitAt records a completion at now and persists the new streak
// counters. It reports false when no habit has id.
func (s *Store) TrackHabitAt(ctx context.Context, id string, now time.Time) (daytrack.Habit, bool, error) {
	h, ok, err := s.Habits.modify(ctx, id, func(h daytrack.Habit) daytrack.Habit {
		return h.Track(now)
	})
	if err != nil || !ok {
		return h, ok, err
	}
	s.l.Info("tracked habit", "id", id, "streak", h.CurrentStreak, "longest", h.LongestStreak)
	return h, true, nil
}

// normalizeHabit keeps the counters non-negative, the longest streak at least
// the current one and total completions from going down across updates.
func normalizeHabit(next daytrack.Habit, prev *daytrack.Habit) daytrack.Habit {
	next.CurrentStreak = max(next.CurrentStreak, 0)
	next.LongestStreak = max(next.LongestStreak, next.CurrentStreak)
	next.TotalCompletions = max(next.TotalCompletions, 0)
	if prev != nil {
		next.TotalCompletions = max(next.TotalCompletions, prev.TotalCompletions)
	}
	return next
}
