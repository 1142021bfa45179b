package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benjamonnguyen/daytrack"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
	dash        = '─'
	checkMark   = '✔'
	openBox     = '□'
)

var (
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(false)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true)
	highPriority = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func line(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteRune(dash)
	}
	return sb.String()
}

func colorize(color string, s string) string {
	return color + s + colorReset
}

func renderHeader(title string, width int) string {
	return headerStyle.Render(title) + " " + faintStyle.Render(line(max(width-len(title)-1, 0)))
}

func renderSummary(d daytrack.Dashboard, timeFormat string) string {
	mood := faintStyle.Render("mood not set (/m <mood>)")
	if d.HasMood {
		mood = fmt.Sprintf("mood: %s %s", d.Mood.Value, faintStyle.Render("since "+d.Mood.SetAt.Local().Format(timeFormat)))
	}
	lines := []string{
		fmt.Sprintf("tasks: %d/%d completed (%d%%)", d.CompletedTasks, d.TotalTasks, d.CompletionRate),
		fmt.Sprintf("habits: avg streak %d days", d.AvgHabitStreak),
		fmt.Sprintf("goals: avg progress %d%%", d.AvgGoalProgress),
		mood,
	}

	var names []string
	for _, t := range d.Tasks {
		names = append(names, t.Title)
	}
	if len(names) > 0 {
		lines = append(lines, "first tasks: "+faintStyle.Render(strings.Join(names, ", ")))
	}
	names = nil
	for _, h := range d.Habits {
		names = append(names, fmt.Sprintf("%s (%d)", h.Name, h.CurrentStreak))
	}
	if len(names) > 0 {
		lines = append(lines, "top streaks: "+faintStyle.Render(strings.Join(names, ", ")))
	}
	names = nil
	for _, g := range d.Goals {
		names = append(names, fmt.Sprintf("%s (%d%%)", g.Title, g.Progress))
	}
	if len(names) > 0 {
		lines = append(lines, "closest goals: "+faintStyle.Render(strings.Join(names, ", ")))
	}

	return strings.Join(lines, "\n")
}

func renderTask(n int, t daytrack.Task, timeFormat string) string {
	box := openBox
	if t.IsCompleted {
		box = checkMark
	}
	title := t.Title
	if t.Priority == daytrack.PriorityHigh && !t.IsCompleted {
		title = highPriority.Render(title)
	}
	s := fmt.Sprintf("%2d. %c %s %s", n, box, title, faintStyle.Render(strings.ToLower(string(t.Category))))
	if t.DueDate != nil {
		s += faintStyle.Render(" due " + t.DueDate.Local().Format(timeFormat))
	}
	return s
}

func renderHabit(n int, h daytrack.Habit, timeFormat string) string {
	s := fmt.Sprintf("%2d. %s  streak %d (best %d, %d total) %s",
		n, h.Name, h.CurrentStreak, h.LongestStreak, h.TotalCompletions,
		faintStyle.Render(strings.ToLower(string(h.Frequency))))
	if h.LastTracked != nil {
		s += faintStyle.Render(" last " + h.LastTracked.Local().Format(timeFormat))
	}
	return s
}

func renderGoal(n int, g daytrack.Goal) string {
	const barWidth = 20
	filled := min(max(g.Progress, 0), 100) * barWidth / 100
	bar := strings.Repeat("█", filled) + faintStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%2d. %s %s %3d%% %s", n, g.Title, bar, g.Progress,
		faintStyle.Render(fmt.Sprintf("(%s/%s)", g.CurrentValue, g.TargetValue)))
}

func renderDashboard(msg RefreshMsg, width int, timeFormat string) string {
	var sections []string
	sections = append(sections, renderHeader("Today", width), renderSummary(msg.dashboard, timeFormat))

	lines := []string{renderHeader("Tasks", width)}
	for i, t := range msg.tasks {
		lines = append(lines, renderTask(i+1, t, timeFormat))
	}
	sections = append(sections, strings.Join(lines, "\n"))

	lines = []string{renderHeader("Habits", width)}
	for i, h := range msg.habits {
		lines = append(lines, renderHabit(i+1, h, timeFormat))
	}
	sections = append(sections, strings.Join(lines, "\n"))

	lines = []string{renderHeader("Goals", width)}
	for i, g := range msg.goals {
		lines = append(lines, renderGoal(i+1, g))
	}
	sections = append(sections, strings.Join(lines, "\n"))

	return strings.Join(sections, "\n\n")
}
