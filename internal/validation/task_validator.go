package validation

import (
	"strings"
	"time"

	"taskvault/internal/domain"
)

// DueDateFormat is the input format accepted for due dates.
const DueDateFormat = "2006-01-02"

// minDescriptionLength matches the add/edit form contract: descriptions
// need at least two characters.
const minDescriptionLength = 2

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// TaskValidator enforces the form-layer field contract before input reaches
// the store. The store itself treats any task-shaped input as valid and only
// enforces identity and ownership invariants.
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateInput validates all caller-supplied fields of a new task.
func (tv *TaskValidator) ValidateInput(in domain.TaskInput) error {
	validationError := NewValidationError()

	if strings.TrimSpace(in.Title) == "" {
		validationError.AddRequiredError("title")
	}
	if len(strings.TrimSpace(in.Description)) < minDescriptionLength {
		validationError.AddInvalidLengthError("description", in.Description, minDescriptionLength, 0)
	}
	if !in.Status.IsValid() {
		validationError.AddInvalidValueError("status", string(in.Status), "must be pending or completed")
	}
	if !in.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", string(in.Priority), "must be low, medium or high")
	}
	if in.DueDate.IsZero() {
		validationError.AddRequiredError("due date")
	} else if domain.DateOnly(in.DueDate).Before(domain.DateOnly(timeNow())) {
		validationError.AddInvalidRangeError("due date", in.DueDate.Format(DueDateFormat), "must not be in the past")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidatePatch validates the supplied fields of a partial task update.
// Nil fields are skipped; a past due date is allowed on edit.
func (tv *TaskValidator) ValidatePatch(patch domain.TaskPatch) error {
	validationError := NewValidationError()

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		validationError.AddRequiredError("title")
	}
	if patch.Description != nil && len(strings.TrimSpace(*patch.Description)) < minDescriptionLength {
		validationError.AddInvalidLengthError("description", *patch.Description, minDescriptionLength, 0)
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		validationError.AddInvalidValueError("status", string(*patch.Status), "must be pending or completed")
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", string(*patch.Priority), "must be low, medium or high")
	}
	if patch.DueDate != nil && patch.DueDate.IsZero() {
		validationError.AddRequiredError("due date")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateUserName validates a display name for registration or login.
func (tv *TaskValidator) ValidateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("name")
		return validationError
	}
	return nil
}

// ParseDueDate parses a due date string in the accepted input format.
func (tv *TaskValidator) ParseDueDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DueDateFormat, value)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("due date", value, DueDateFormat)
		return time.Time{}, validationError
	}
	return domain.DateOnly(parsed), nil
}
