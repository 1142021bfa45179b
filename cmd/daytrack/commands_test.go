package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benjamonnguyen/daytrack"
	"github.com/benjamonnguyen/daytrack/charmlog"
	"github.com/benjamonnguyen/daytrack/memory"
	"github.com/benjamonnguyen/daytrack/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return store.New(memory.NewKVStore(), charmlog.Discard(), store.WithClock(func() time.Time { return now }))
}

func runCommand(t *testing.T, s *store.Store, input string) string {
	t.Helper()
	act, err := parseCommand(input)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", input, err)
	}
	text, err := act(context.Background(), s)
	if err != nil {
		t.Fatalf("failed to run %q: %v", input, err)
	}
	return text
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{input: "/q", expected: errQuit},
		{input: "/?", expected: errHelp},
		{input: "hello", expected: errHelp},
	}
	for _, tt := range tests {
		if _, err := parseCommand(tt.input); !errors.Is(err, tt.expected) {
			t.Errorf("parseCommand(%q): expected %v, got %v", tt.input, tt.expected, err)
		}
	}

	for _, input := range []string{"/t", "/t !urgent taxes", "/t #chores dishes", "/h ~hourly water", "/c one", "/g savings", "/g savings 10", "/p 1", "/m", "/x q 1", "/x t"} {
		if _, err := parseCommand(input); err == nil || errors.Is(err, errHelp) {
			t.Errorf("parseCommand(%q): expected usage error, got %v", input, err)
		}
	}
}

func TestTaskCommands(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	runCommand(t, s, "/t file taxes !high #work")
	runCommand(t, s, "/t stretch")

	tasks, _ := s.Tasks.List(ctx)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "file taxes" || tasks[0].Priority != daytrack.PriorityHigh || tasks[0].Category != daytrack.CategoryWork {
		t.Errorf("unexpected first task %+v", tasks[0])
	}
	if tasks[1].Priority != daytrack.PriorityMedium || tasks[1].Category != daytrack.CategoryPersonal {
		t.Errorf("expected defaults on second task, got %+v", tasks[1])
	}

	if got := runCommand(t, s, "/c 2"); got != `Completed "stretch"` {
		t.Errorf("unexpected result %q", got)
	}
	if got := runCommand(t, s, "/c 2"); got != `Reopened "stretch"` {
		t.Errorf("unexpected result %q", got)
	}

	runCommand(t, s, "/x t 1")
	tasks, _ = s.Tasks.List(ctx)
	if len(tasks) != 1 || tasks[0].Title != "stretch" {
		t.Errorf("expected only stretch to remain, got %+v", tasks)
	}

	act, _ := parseCommand("/c 5")
	if _, err := act(ctx, s); err == nil {
		t.Error("expected error for out of range task")
	}
}

func TestHabitAndGoalCommands(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	runCommand(t, s, "/h read ~weekly")
	if got := runCommand(t, s, "/k 1"); got != "read streak: 1 (best 1)" {
		t.Errorf("unexpected result %q", got)
	}
	habits, _ := s.Habits.List(ctx)
	if habits[0].Frequency != daytrack.FrequencyWeekly || habits[0].TotalCompletions != 1 {
		t.Errorf("unexpected habit %+v", habits[0])
	}

	if got := runCommand(t, s, "/g run a marathon 10/42"); got != `Added goal "run a marathon" at 24%` {
		t.Errorf("unexpected result %q", got)
	}
	if got := runCommand(t, s, "/p 1 21"); got != "run a marathon is 50% done" {
		t.Errorf("unexpected result %q", got)
	}

	runCommand(t, s, "/m Happy")
	mood, ok, _ := s.GetMood(ctx)
	if !ok || mood.Value != "Happy" {
		t.Errorf("expected mood Happy, got %+v", mood)
	}

	runCommand(t, s, "/x g 1")
	runCommand(t, s, "/x h 1")
	goals, _ := s.Goals.List(ctx)
	habits, _ = s.Habits.List(ctx)
	if len(goals) != 0 || len(habits) != 0 {
		t.Errorf("expected goals and habits deleted, got %d and %d", len(goals), len(habits))
	}
}

func TestClearAllCommand(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	runCommand(t, s, "/t file taxes")
	runCommand(t, s, "/h stretch")
	runCommand(t, s, "/g run 5/10")
	runCommand(t, s, "/x all")

	d, err := s.Dashboard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if d.TotalTasks != 0 || len(d.Habits) != 0 || len(d.Goals) != 0 {
		t.Errorf("expected everything deleted, got %+v", d)
	}
}
