package daytrack

import "time"

const day = 24 * time.Hour

// Track returns h after a completion at now. Two completions count as
// consecutive when fewer than two whole days separate them, so tracking twice
// within the same day also extends the streak.
func (h Habit) Track(now time.Time) Habit {
	consecutive := true
	if h.LastTracked != nil {
		consecutive = now.Sub(*h.LastTracked)/day <= 1
	}

	if consecutive {
		h.CurrentStreak++
	} else {
		h.CurrentStreak = 1
	}
	h.LongestStreak = max(h.CurrentStreak, h.LongestStreak)
	h.TotalCompletions++
	h.LastTracked = &now
	return h
}
