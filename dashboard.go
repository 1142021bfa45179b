package daytrack

import (
	"cmp"
	"slices"
)

const dashboardPreviewSize = 3

type Dashboard struct {
	CompletedTasks  int
	TotalTasks      int
	CompletionRate  int
	AvgHabitStreak  int
	AvgGoalProgress int

	Tasks  []Task
	Habits []Habit
	Goals  []Goal

	Mood    Mood
	HasMood bool
}

// Summarize builds the dashboard from whole collections. Averages and the
// completion rate are truncated to int. Habits are ranked by current streak and goals by progress,
// both descending with ties kept in persisted order.
func Summarize(tasks []Task, habits []Habit, goals []Goal) Dashboard {
	var d Dashboard

	d.TotalTasks = len(tasks)
	for _, t := range tasks {
		if t.IsCompleted {
			d.CompletedTasks++
		}
	}
	if d.TotalTasks > 0 {
		d.CompletionRate = d.CompletedTasks * 100 / d.TotalTasks
	}

	if len(habits) > 0 {
		sum := 0
		for _, h := range habits {
			sum += h.CurrentStreak
		}
		d.AvgHabitStreak = sum / len(habits)
	}
	if len(goals) > 0 {
		sum := 0
		for _, g := range goals {
			sum += g.Progress
		}
		d.AvgGoalProgress = sum / len(goals)
	}

	d.Tasks = slices.Clone(tasks[:min(len(tasks), dashboardPreviewSize)])

	rankedHabits := slices.Clone(habits)
	slices.SortStableFunc(rankedHabits, func(a, b Habit) int {
		return cmp.Compare(b.CurrentStreak, a.CurrentStreak)
	})
	d.Habits = rankedHabits[:min(len(rankedHabits), dashboardPreviewSize)]

	rankedGoals := slices.Clone(goals)
	slices.SortStableFunc(rankedGoals, func(a, b Goal) int {
		return cmp.Compare(b.Progress, a.Progress)
	})
	d.Goals = rankedGoals[:min(len(rankedGoals), dashboardPreviewSize)]

	return d
}
