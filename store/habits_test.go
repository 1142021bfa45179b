package store

import (
	"context"
	"testing"
	"time"

	"github.com/benjamonnguyen/daytrack"
)

func TestTrackHabit(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	last := testNow.Add(-72 * time.Hour)

	h := daytrack.NewHabit("journal")
	h.CurrentStreak = 3
	h.LongestStreak = 5
	h.TotalCompletions = 9
	h.LastTracked = &last
	h, err := s.Habits.Add(ctx, h)
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		at              time.Time
		expectedCurrent int
		expectedLongest int
	}{
		{at: last.Add(20 * time.Hour), expectedCurrent: 4, expectedLongest: 5},
		{at: last.Add(20*time.Hour + 50*time.Hour), expectedCurrent: 1, expectedLongest: 5},
	}
	for i, step := range steps {
		got, ok, err := s.TrackHabitAt(ctx, h.ID, step.at)
		if err != nil || !ok {
			t.Fatalf("step %d: expected habit to be tracked, got ok=%v err=%v", i, ok, err)
		}
		if got.CurrentStreak != step.expectedCurrent || got.LongestStreak != step.expectedLongest {
			t.Errorf("step %d: expected %d/%d, got %d/%d", i,
				step.expectedCurrent, step.expectedLongest, got.CurrentStreak, got.LongestStreak)
		}
	}

	listed, _ := s.Habits.List(ctx)
	stored := listed[0]
	if stored.CurrentStreak != 1 || stored.LongestStreak != 5 {
		t.Errorf("expected persisted 1/5, got %d/%d", stored.CurrentStreak, stored.LongestStreak)
	}
	if stored.TotalCompletions != 11 {
		t.Errorf("expected 11 completions, got %d", stored.TotalCompletions)
	}
	if stored.LastTracked == nil || !stored.LastTracked.Equal(steps[1].at) {
		t.Errorf("expected last tracked %v, got %v", steps[1].at, stored.LastTracked)
	}
}

func TestTrackHabitFirstTime(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()
	h, _ := s.Habits.Add(ctx, daytrack.NewHabit("walk"))

	got, ok, err := s.TrackHabit(ctx, h.ID)
	if err != nil || !ok {
		t.Fatalf("expected habit to be tracked, got ok=%v err=%v", ok, err)
	}
	if got.CurrentStreak != 1 || got.LongestStreak != 1 || got.TotalCompletions != 1 {
		t.Errorf("expected 1/1/1, got %d/%d/%d", got.CurrentStreak, got.LongestStreak, got.TotalCompletions)
	}
	if got.LastTracked == nil || !got.LastTracked.Equal(testNow) {
		t.Errorf("expected last tracked at clock time, got %v", got.LastTracked)
	}
}

func TestTrackHabitUnknownID(t *testing.T) {
	s, kv := setupTestStore(t)
	ctx := context.Background()

	_, ok, err := s.TrackHabit(ctx, "nope")
	if err != nil || ok {
		t.Errorf("expected silent no-op, got ok=%v err=%v", ok, err)
	}
	if _, err := kv.Get(ctx, daytrack.KeyHabits); err == nil {
		t.Error("expected nothing to be written")
	}
}

func TestHabitUpdateKeepsInvariants(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	h := daytrack.NewHabit("run")
	h.TotalCompletions = 10
	h, _ = s.Habits.Add(ctx, h)

	h.CurrentStreak = 7
	h.LongestStreak = 2
	h.TotalCompletions = 3
	if err := s.Habits.Update(ctx, h); err != nil {
		t.Fatal(err)
	}

	listed, _ := s.Habits.List(ctx)
	got := listed[0]
	if got.LongestStreak != 7 {
		t.Errorf("expected longest streak raised to 7, got %d", got.LongestStreak)
	}
	if got.TotalCompletions != 10 {
		t.Errorf("expected completions to stay at 10, got %d", got.TotalCompletions)
	}
}
