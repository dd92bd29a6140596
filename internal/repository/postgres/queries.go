package postgres

import (
	"fmt"
	"strings"
)

// insertQuery builds a named INSERT over the given columns. Identifiers are
// quoted because a few profile columns ("references") are reserved words.
func insertQuery(table string, columns []string) string {
	quoted := make([]string, len(columns))
	params := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = fmt.Sprintf("%q", col)
		params[i] = ":" + col
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(params, ", "),
	)
}

// updateQuery builds a named UPDATE over the given columns keyed by keyColumn,
// bumping updated_at.
func updateQuery(table string, columns []string, keyColumn string) string {
	assignments := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		if col == keyColumn {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%q = :%s", col, col))
	}
	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")
	return fmt.Sprintf(
		"UPDATE %s SET %s WHERE %q = :%s",
		table, strings.Join(assignments, ", "), keyColumn, keyColumn,
	)
}
