package query

import (
	"time"

	"taskvault/internal/domain"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Today returns the current calendar date at date-only precision.
// Time-based filters compute "today" once per call so a recomputation
// compares every task against the same date.
func Today() time.Time {
	return domain.DateOnly(timeNow())
}
