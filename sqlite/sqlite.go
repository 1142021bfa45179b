package sqlite

import "strings"

type scannable interface {
	Scan(...any) error
}

// generateParameters returns n comma separated placeholders in parentheses,
// e.g. "(?,?,?)".
func generateParameters(n int) string {
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("(?")
	for range n - 1 {
		sb.WriteString(",?")
	}

	sb.WriteString(")")
	return sb.String()
}

// generateRows returns rows groups of cols placeholders, e.g. "(?,?),(?,?)".
func generateRows(rows, cols int) string {
	group := generateParameters(cols)
	groups := make([]string, rows)
	for i := range groups {
		groups[i] = group
	}
	return strings.Join(groups, ",")
}
