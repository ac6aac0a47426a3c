package query

import (
	"strings"

	"taskvault/internal/domain"
)

// SearchByText restricts tasks to those whose title or description contains
// the query as a case-insensitive substring. An empty query returns the
// input unchanged.
func SearchByText(tasks []domain.Task, query string) []domain.Task {
	if query == "" {
		return tasks
	}

	lower := strings.ToLower(query)
	return filter(tasks, func(t domain.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), lower) ||
			strings.Contains(strings.ToLower(t.Description), lower)
	})
}
