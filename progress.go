package daytrack

import (
	"math"
	"strconv"
	"strings"
)

// ComputeProgress returns round(current/target*100) clamped to [0, 100].
// An unparseable current counts as 0 and an unparseable target as 1.
// A target <= 0 always yields 0.
func ComputeProgress(current, target string) int {
	c, ok := parseDecimal(current)
	if !ok {
		c = 0
	}
	t, ok := parseDecimal(target)
	if !ok {
		t = 1
	}
	if t <= 0 {
		return 0
	}

	pct := math.Round(c / t * 100)
	switch {
	case math.IsNaN(pct), pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

// parseDecimal rejects NaN and infinities; "NaN" and "Inf" are not amounts.
func parseDecimal(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
