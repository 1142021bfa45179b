package store

import (
	"context"

	"github.com/benjamonnguyen/daytrack"
)

// UpdateGoalProgress sets the current value of goal id and re-derives its
// progress. It reports false when no goal has id.
func (s *Store) UpdateGoalProgress(ctx context.Context, id, currentValue string) (daytrack.Goal, bool, error) {
	return s.Goals.modify(ctx, id, func(g daytrack.Goal) daytrack.Goal {
		g.CurrentValue = currentValue
		return g
	})
}

func normalizeGoal(next daytrack.Goal, _ *daytrack.Goal) daytrack.Goal {
	next.Progress = daytrack.ComputeProgress(next.CurrentValue, next.TargetValue)
	return next
}
