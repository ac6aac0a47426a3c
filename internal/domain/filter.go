package domain

// FilterKey represents the active category filter for the derived task view.
type FilterKey string

const (
	FilterAll       FilterKey = "all"
	FilterCompleted FilterKey = "completed"
	FilterPending   FilterKey = "pending"
	FilterLow       FilterKey = "low"
	FilterMedium    FilterKey = "medium"
	FilterHigh      FilterKey = "high"
	FilterOverdue   FilterKey = "overdue"
	FilterUpcoming  FilterKey = "upcoming"
)

// IsValid checks if the filter key is a known value.
func (f FilterKey) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending,
		FilterLow, FilterMedium, FilterHigh,
		FilterOverdue, FilterUpcoming:
		return true
	}
	return false
}

// SortBy represents an optional sort order for task listings.
type SortBy string

const (
	SortNone     SortBy = ""
	SortPriority SortBy = "priority"
	SortDueDate  SortBy = "dueDate"
)

// IsValid checks if the sort order is a known value.
func (s SortBy) IsValid() bool {
	return s == SortNone || s == SortPriority || s == SortDueDate
}
