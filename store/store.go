// Package store owns all persisted daytrack state. Callers go through a Store
// and never touch its KVStore directly.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/benjamonnguyen/daytrack"
)

type Store struct {
	Tasks  *Repository[daytrack.Task]
	Habits *Repository[daytrack.Habit]
	Goals  *Repository[daytrack.Goal]

	mood *moodTracker
	now  func() time.Time
	l    daytrack.Logger
}

type options struct {
	now   func() time.Time
	newID func() string
}

type Option func(*options)

// WithClock replaces time.Now for creation, completion and tracking times.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator replaces the random UUID generator. Add only retries ids
// already present in the collection, so newID must never repeat an id it has
// returned before.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func New(kv daytrack.KVStore, logger daytrack.Logger, opts ...Option) *Store {
	o := options{
		now: func() time.Time {
			return time.Now().Round(0)
		},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		Tasks:  newRepository[daytrack.Task](daytrack.KeyTasks, kv, logger, o),
		Habits: newRepository[daytrack.Habit](daytrack.KeyHabits, kv, logger, o),
		Goals:  newRepository[daytrack.Goal](daytrack.KeyGoals, kv, logger, o),
		mood: &moodTracker{
			kv: kv,
			l:  logger,
		},
		now: o.now,
		l:   logger,
	}
	s.Habits.normalize = normalizeHabit
	s.Goals.normalize = normalizeGoal
	return s
}

// Snapshot is every collection and the mood as read by one call to
// Store.Snapshot.
type Snapshot struct {
	Tasks  []daytrack.Task
	Habits []daytrack.Habit
	Goals  []daytrack.Goal

	Mood    daytrack.Mood
	HasMood bool
}

// Dashboard summarizes the snapshot.
func (snap Snapshot) Dashboard() daytrack.Dashboard {
	d := daytrack.Summarize(snap.Tasks, snap.Habits, snap.Goals)
	d.Mood, d.HasMood = snap.Mood, snap.HasMood
	return d
}

// Snapshot reads each collection and the mood once. Each read holds only its
// own collection lock.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Tasks, err = s.Tasks.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Habits, err = s.Habits.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Goals, err = s.Goals.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Mood, snap.HasMood, err = s.GetMood(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Dashboard loads every collection and the mood and summarizes them.
func (s *Store) Dashboard(ctx context.Context) (daytrack.Dashboard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return daytrack.Dashboard{}, err
	}
	return snap.Dashboard(), nil
}

// ClearAll empties the task, habit and goal collections. The mood is kept.
// Every collection is attempted; failures are joined.
func (s *Store) ClearAll(ctx context.Context) error {
	err := errors.Join(
		s.Tasks.Clear(ctx),
		s.Habits.Clear(ctx),
		s.Goals.Clear(ctx),
	)
	if err != nil {
		return err
	}
	s.l.Info("cleared all collections")
	return nil
}
