package domain

import (
	"time"
)

// Status represents the completion state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValid checks if the status is a known value.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is a known value.
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Rank returns the sort rank of the priority. High sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Task represents a single to-do item in the domain model.
// ID and CreatedAt are assigned once at creation and never mutated.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
	CreatedAt   time.Time
}

// NewTask creates a Task from an input, an assigned ID and a creation time.
// The due date is normalized to date-only precision.
func NewTask(id string, in TaskInput, createdAt time.Time) Task {
	return Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     DateOnly(in.DueDate),
		CreatedAt:   createdAt,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Title != "" && t.Status.IsValid() && t.Priority.IsValid() && !t.DueDate.IsZero()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// TaskInput carries the caller-supplied fields for a new task.
// ID and CreatedAt are generated by the store, never supplied.
type TaskInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
}

// TaskPatch carries a partial update for an existing task. Nil fields are
// left untouched. ID and CreatedAt have no patch fields, so the immutability
// of both holds by construction.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     *time.Time
}

// IsEmpty returns true if the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil && p.DueDate == nil
}

// Apply merges the patch into a copy of the task and returns it.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = DateOnly(*p.DueDate)
	}
	return t
}

// DateOnly truncates a time to calendar-date precision in UTC.
// Due dates carry date-only semantics, so all comparisons go through this.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
