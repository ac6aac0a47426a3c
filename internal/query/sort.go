package query

import (
	"sort"

	"taskvault/internal/domain"
)

// SortByPriority returns a copy of tasks sorted by priority rank ascending
// (high before medium before low). The sort is stable: ties preserve the
// original relative order.
func SortByPriority(tasks []domain.Task) []domain.Task {
	sorted := copyTasks(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})
	return sorted
}

// SortByDueDate returns a copy of tasks sorted by due date ascending.
// The sort is stable: ties preserve the original relative order.
func SortByDueDate(tasks []domain.Task) []domain.Task {
	sorted := copyTasks(tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})
	return sorted
}

// Sort applies the given sort order to a copy of tasks.
// SortNone returns an unsorted copy in insertion order.
func Sort(tasks []domain.Task, by domain.SortBy) []domain.Task {
	switch by {
	case domain.SortPriority:
		return SortByPriority(tasks)
	case domain.SortDueDate:
		return SortByDueDate(tasks)
	default:
		return copyTasks(tasks)
	}
}

func copyTasks(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	return sorted
}
