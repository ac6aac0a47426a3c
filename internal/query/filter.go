package query

import (
	"time"

	"taskvault/internal/domain"
)

// FilterByCategory returns the tasks matching the given filter key.
// The input slice is never modified; FilterAll returns a copy.
// Overdue and upcoming compare due dates against "today" computed once
// per call, so a task due today lands in neither bucket.
func FilterByCategory(tasks []domain.Task, key domain.FilterKey) []domain.Task {
	return filterByCategoryAt(tasks, key, Today())
}

func filterByCategoryAt(tasks []domain.Task, key domain.FilterKey, today time.Time) []domain.Task {
	switch key {
	case domain.FilterCompleted:
		return filter(tasks, func(t domain.Task) bool { return t.Status == domain.StatusCompleted })
	case domain.FilterPending:
		return filter(tasks, func(t domain.Task) bool { return t.Status == domain.StatusPending })
	case domain.FilterLow, domain.FilterMedium, domain.FilterHigh:
		return filter(tasks, func(t domain.Task) bool { return t.Priority == domain.Priority(key) })
	case domain.FilterOverdue:
		return filter(tasks, func(t domain.Task) bool { return domain.DateOnly(t.DueDate).Before(today) })
	case domain.FilterUpcoming:
		return filter(tasks, func(t domain.Task) bool { return domain.DateOnly(t.DueDate).After(today) })
	default:
		return filter(tasks, func(domain.Task) bool { return true })
	}
}

func filter(tasks []domain.Task, keep func(domain.Task) bool) []domain.Task {
	result := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
