package query

import (
	"time"

	"taskvault/internal/domain"
)

// GroupedTasks holds tasks bucketed by due date relative to today.
// The buckets are pairwise disjoint: a task's single due date puts it in
// exactly one of them.
type GroupedTasks struct {
	Today    []domain.Task
	Overdue  []domain.Task
	Upcoming []domain.Task
}

// GroupByTime buckets tasks into today, overdue and upcoming by comparing
// each due date against the current calendar date, computed once per call.
func GroupByTime(tasks []domain.Task) GroupedTasks {
	return groupByTimeAt(tasks, Today())
}

func groupByTimeAt(tasks []domain.Task, today time.Time) GroupedTasks {
	grouped := GroupedTasks{
		Today:    []domain.Task{},
		Overdue:  []domain.Task{},
		Upcoming: []domain.Task{},
	}

	for _, t := range tasks {
		due := domain.DateOnly(t.DueDate)
		switch {
		case due.Before(today):
			grouped.Overdue = append(grouped.Overdue, t)
		case due.After(today):
			grouped.Upcoming = append(grouped.Upcoming, t)
		default:
			grouped.Today = append(grouped.Today, t)
		}
	}

	return grouped
}
