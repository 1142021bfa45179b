package daytrack

import "testing"

func TestSummarize(t *testing.T) {
	tasks := []Task{
		{ID: "t1", IsCompleted: true},
		{ID: "t2"},
		{ID: "t3", IsCompleted: true},
		{ID: "t4"},
	}
	habits := []Habit{
		{ID: "h1", CurrentStreak: 1},
		{ID: "h2", CurrentStreak: 4},
		{ID: "h3", CurrentStreak: 2},
		{ID: "h4", CurrentStreak: 4},
	}
	goals := []Goal{
		{ID: "g1", Progress: 10},
		{ID: "g2", Progress: 95},
	}

	d := Summarize(tasks, habits, goals)

	if d.CompletedTasks != 2 || d.TotalTasks != 4 {
		t.Errorf("expected 2/4 tasks completed, got %d/%d", d.CompletedTasks, d.TotalTasks)
	}
	if d.CompletionRate != 50 {
		t.Errorf("expected completion rate 50, got %d", d.CompletionRate)
	}
	if d.AvgHabitStreak != 2 {
		t.Errorf("expected average streak 2, got %d", d.AvgHabitStreak)
	}
	if d.AvgGoalProgress != 52 {
		t.Errorf("expected average progress 52, got %d", d.AvgGoalProgress)
	}

	assertIDs(t, "tasks", []string{"t1", "t2", "t3"}, len(d.Tasks), func(i int) string { return d.Tasks[i].ID })
	assertIDs(t, "habits", []string{"h2", "h4", "h3"}, len(d.Habits), func(i int) string { return d.Habits[i].ID })
	assertIDs(t, "goals", []string{"g2", "g1"}, len(d.Goals), func(i int) string { return d.Goals[i].ID })

	if habits[0].ID != "h1" {
		t.Errorf("expected input habits to keep their order, got %s first", habits[0].ID)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	d := Summarize(nil, nil, nil)

	if d.TotalTasks != 0 || d.CompletionRate != 0 || d.AvgHabitStreak != 0 || d.AvgGoalProgress != 0 {
		t.Errorf("expected zero summary, got %+v", d)
	}
	if len(d.Tasks) != 0 || len(d.Habits) != 0 || len(d.Goals) != 0 {
		t.Errorf("expected empty previews, got %+v", d)
	}
}

func TestSummarizeCompletionRateTruncates(t *testing.T) {
	tests := []struct {
		done, total int
		expected    int
	}{
		{done: 0, total: 0, expected: 0},
		{done: 1, total: 3, expected: 33},
		{done: 2, total: 3, expected: 66},
		{done: 3, total: 3, expected: 100},
	}
	for _, tt := range tests {
		tasks := make([]Task, tt.total)
		for i := 0; i < tt.done; i++ {
			tasks[i].IsCompleted = true
		}
		if got := Summarize(tasks, nil, nil).CompletionRate; got != tt.expected {
			t.Errorf("%d of %d done: expected %d, got %d", tt.done, tt.total, tt.expected, got)
		}
	}
}

func assertIDs(t *testing.T, name string, expected []string, n int, id func(int) string) {
	t.Helper()
	if n != len(expected) {
		t.Fatalf("expected %d %s, got %d", len(expected), name, n)
	}
	for i, want := range expected {
		if got := id(i); got != want {
			t.Errorf("expected %s[%d] to be %s, got %s", name, i, want, got)
		}
	}
}
