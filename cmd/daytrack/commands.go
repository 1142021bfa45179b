package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/benjamonnguyen/daytrack"
	"github.com/benjamonnguyen/daytrack/store"
)

// action runs one user command against the store and returns a line to show.
type action func(ctx context.Context, s *store.Store) (string, error)

var (
	errQuit = errors.New("quit")
	errHelp = errors.New("help")
)

// parseCommand turns a slash command into an action. It returns errQuit for /q
// and errHelp for /? or an unknown command.
func parseCommand(input string) (action, error) {
	input = strings.TrimSpace(input)
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/t":
		return parseAddTask(arg)
	case "/c":
		n, err := parseIndex(arg)
		if err != nil {
			return nil, err
		}
		return toggleTask(n), nil
	case "/h":
		return parseAddHabit(arg)
	case "/k":
		n, err := parseIndex(arg)
		if err != nil {
			return nil, err
		}
		return trackHabit(n), nil
	case "/g":
		return parseAddGoal(arg)
	case "/p":
		idx, current, ok := strings.Cut(arg, " ")
		if !ok {
			return nil, fmt.Errorf("usage: /p <goal #> <current value>")
		}
		n, err := parseIndex(idx)
		if err != nil {
			return nil, err
		}
		return setGoalProgress(n, strings.TrimSpace(current)), nil
	case "/m":
		if arg == "" {
			return nil, fmt.Errorf("usage: /m <mood>")
		}
		return setMood(arg), nil
	case "/x":
		if arg == "all" {
			return clearAll, nil
		}
		kind, idx, _ := strings.Cut(arg, " ")
		n, err := parseIndex(idx)
		if err != nil {
			return nil, err
		}
		return deleteRecord(kind, n)
	case "/q":
		return nil, errQuit
	default:
		return nil, errHelp
	}
}

// parseAddTask reads "<title> [!priority] [#category]".
func parseAddTask(arg string) (action, error) {
	t := daytrack.NewTask("")
	var title []string
	for _, word := range strings.Fields(arg) {
		switch {
		case strings.HasPrefix(word, "!") && len(word) > 1:
			p, err := daytrack.ParsePriority(word[1:])
			if err != nil {
				return nil, err
			}
			t.Priority = p
		case strings.HasPrefix(word, "#") && len(word) > 1:
			c, err := daytrack.ParseCategory(word[1:])
			if err != nil {
				return nil, err
			}
			t.Category = c
		default:
			title = append(title, word)
		}
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("usage: /t <title> [!priority] [#category]")
	}
	t.Title = strings.Join(title, " ")

	return func(ctx context.Context, s *store.Store) (string, error) {
		added, err := s.Tasks.Add(ctx, t)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added task %q", added.Title), nil
	}, nil
}

// parseAddHabit reads "<name> [~frequency]".
func parseAddHabit(arg string) (action, error) {
	h := daytrack.NewHabit("")
	var name []string
	for _, word := range strings.Fields(arg) {
		if strings.HasPrefix(word, "~") && len(word) > 1 {
			f, err := daytrack.ParseFrequency(word[1:])
			if err != nil {
				return nil, err
			}
			h.Frequency = f
			continue
		}
		name = append(name, word)
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("usage: /h <name> [~frequency]")
	}
	h.Name = strings.Join(name, " ")

	return func(ctx context.Context, s *store.Store) (string, error) {
		added, err := s.Habits.Add(ctx, h)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added habit %q", added.Name), nil
	}, nil
}

// parseAddGoal reads "<title> <current>/<target>".
func parseAddGoal(arg string) (action, error) {
	usage := errors.New("usage: /g <title> <current>/<target>")
	i := strings.LastIndex(arg, " ")
	if i == -1 {
		return nil, usage
	}
	title, amounts := strings.TrimSpace(arg[:i]), arg[i+1:]
	current, target, ok := strings.Cut(amounts, "/")
	if !ok || title == "" {
		return nil, usage
	}
	g := daytrack.NewGoal(title, current, target)

	return func(ctx context.Context, s *store.Store) (string, error) {
		added, err := s.Goals.Add(ctx, g)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added goal %q at %d%%", added.Title, added.Progress), nil
	}, nil
}

func toggleTask(n int) action {
	return func(ctx context.Context, s *store.Store) (string, error) {
		tasks, err := s.Tasks.List(ctx)
		if err != nil {
			return "", err
		}
		t, err := pick(tasks, n, "task")
		if err != nil {
			return "", err
		}
		updated, _, err := s.CompleteTask(ctx, t.ID, !t.IsCompleted)
		if err != nil {
			return "", err
		}
		if updated.IsCompleted {
			return fmt.Sprintf("Completed %q", updated.Title), nil
		}
		return fmt.Sprintf("Reopened %q", updated.Title), nil
	}
}

func trackHabit(n int) action {
	return func(ctx context.Context, s *store.Store) (string, error) {
		habits, err := s.Habits.List(ctx)
		if err != nil {
			return "", err
		}
		h, err := pick(habits, n, "habit")
		if err != nil {
			return "", err
		}
		tracked, _, err := s.TrackHabit(ctx, h.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s streak: %d (best %d)", tracked.Name, tracked.CurrentStreak, tracked.LongestStreak), nil
	}
}

func setGoalProgress(n int, current string) action {
	return func(ctx context.Context, s *store.Store) (string, error) {
		goals, err := s.Goals.List(ctx)
		if err != nil {
			return "", err
		}
		g, err := pick(goals, n, "goal")
		if err != nil {
			return "", err
		}
		updated, _, err := s.UpdateGoalProgress(ctx, g.ID, current)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s is %d%% done", updated.Title, updated.Progress), nil
	}
}

func setMood(value string) action {
	return func(ctx context.Context, s *store.Store) (string, error) {
		if err := s.SetMood(ctx, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("Mood set to %s", value), nil
	}
}

func deleteRecord(kind string, n int) (action, error) {
	switch kind {
	case "t":
		return deleteFrom(func(s *store.Store) *store.Repository[daytrack.Task] { return s.Tasks }, n, "task"), nil
	case "h":
		return deleteFrom(func(s *store.Store) *store.Repository[daytrack.Habit] { return s.Habits }, n, "habit"), nil
	case "g":
		return deleteFrom(func(s *store.Store) *store.Repository[daytrack.Goal] { return s.Goals }, n, "goal"), nil
	}
	return nil, fmt.Errorf("usage: /x <t|h|g> <#> or /x all")
}

func clearAll(ctx context.Context, s *store.Store) (string, error) {
	if err := s.ClearAll(ctx); err != nil {
		return "", err
	}
	return "Deleted all tasks, habits and goals", nil
}

func deleteFrom[T daytrack.Record[T]](repo func(*store.Store) *store.Repository[T], n int, kind string) action {
	return func(ctx context.Context, s *store.Store) (string, error) {
		r := repo(s)
		items, err := r.List(ctx)
		if err != nil {
			return "", err
		}
		item, err := pick(items, n, kind)
		if err != nil {
			return "", err
		}
		if err := r.Delete(ctx, item.RecordID()); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted %s #%d", kind, n), nil
	}
}

// pick returns the nth item, counting from 1 as the list is displayed.
func pick[T any](items []T, n int, kind string) (T, error) {
	var zero T
	if n < 1 || n > len(items) {
		return zero, fmt.Errorf("no %s #%d", kind, n)
	}
	return items[n-1], nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", s)
	}
	return n, nil
}
