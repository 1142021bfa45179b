package daytrack

import (
	"fmt"
	"strings"
	"time"
)

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"dueDate"`
	Priority    TaskPriority `json:"priority"`
	Category    TaskCategory `json:"category"`
	IsCompleted bool         `json:"isCompleted"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt"`
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "HIGH"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityLow    TaskPriority = "LOW"
)

type TaskCategory string

const (
	CategoryWork     TaskCategory = "WORK"
	CategoryPersonal TaskCategory = "PERSONAL"
	CategoryHealth   TaskCategory = "HEALTH"
	CategoryLearning TaskCategory = "LEARNING"
)

type Habit struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Frequency        HabitFrequency `json:"frequency"`
	ReminderTime     *time.Time     `json:"reminderTime"`
	CurrentStreak    int            `json:"currentStreak"`
	LongestStreak    int            `json:"longestStreak"`
	TotalCompletions int            `json:"totalCompletions"`
	CreatedAt        time.Time      `json:"createdAt"`
	LastTracked      *time.Time     `json:"lastTracked"`
}

type HabitFrequency string

const (
	FrequencyDaily   HabitFrequency = "DAILY"
	FrequencyWeekly  HabitFrequency = "WEEKLY"
	FrequencyMonthly HabitFrequency = "MONTHLY"
)

// Goal.Progress is derived from CurrentValue and TargetValue by the store on
// every write; values set by callers are overwritten.
type Goal struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Deadline     *time.Time `json:"deadline"`
	Progress     int        `json:"progress"`
	TargetValue  string     `json:"targetValue"`
	CurrentValue string     `json:"currentValue"`
	CreatedAt    time.Time  `json:"createdAt"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt"`
}

// Mood is the single current mood slot. It has no id and no history.
type Mood struct {
	Value string
	SetAt time.Time
}

func NewTask(title string) Task {
	return Task{
		Title:    title,
		Priority: PriorityMedium,
		Category: CategoryPersonal,
	}
}

func NewHabit(name string) Habit {
	return Habit{
		Name:      name,
		Frequency: FrequencyDaily,
	}
}

func NewGoal(title, currentValue, targetValue string) Goal {
	return Goal{
		Title:        title,
		CurrentValue: currentValue,
		TargetValue:  targetValue,
	}
}

func ParsePriority(s string) (TaskPriority, error) {
	p := TaskPriority(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

func ParseCategory(s string) (TaskCategory, error) {
	c := TaskCategory(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func ParseFrequency(s string) (HabitFrequency, error) {
	f := HabitFrequency(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return f, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// record identity, used by the generic repository

func (t Task) RecordID() string           { return t.ID }
func (t Task) RecordCreatedAt() time.Time { return t.CreatedAt }
func (t Task) WithIdentity(id string, createdAt time.Time) Task {
	t.ID = id
	t.CreatedAt = createdAt
	return t
}

func (h Habit) RecordID() string           { return h.ID }
func (h Habit) RecordCreatedAt() time.Time { return h.CreatedAt }
func (h Habit) WithIdentity(id string, createdAt time.Time) Habit {
	h.ID = id
	h.CreatedAt = createdAt
	return h
}

func (g Goal) RecordID() string           { return g.ID }
func (g Goal) RecordCreatedAt() time.Time { return g.CreatedAt }
func (g Goal) WithIdentity(id string, createdAt time.Time) Goal {
	g.ID = id
	g.CreatedAt = createdAt
	return g
}
