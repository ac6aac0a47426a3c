package validation

import (
	"testing"
	"time"

	"taskvault/internal/domain"
)

func stubNow(t *testing.T, now time.Time) {
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}

func validInput(due time.Time) domain.TaskInput {
	return domain.TaskInput{
		Title:       "Write report",
		Description: "quarterly numbers",
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
		DueDate:     due,
	}
}

func TestTaskValidator_ValidateInput(t *testing.T) {
	stubNow(t, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	validator := NewTaskValidator()

	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mutate      func(in *domain.TaskInput)
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid input", func(in *domain.TaskInput) {}, false, ""},
		{"Empty title", func(in *domain.TaskInput) { in.Title = "" }, true, ErrorTypeRequired},
		{"Whitespace title", func(in *domain.TaskInput) { in.Title = "   " }, true, ErrorTypeRequired},
		{"Short description", func(in *domain.TaskInput) { in.Description = "x" }, true, ErrorTypeInvalidLength},
		{"Whitespace description", func(in *domain.TaskInput) { in.Description = "  x  " }, true, ErrorTypeInvalidLength},
		{"Unknown status", func(in *domain.TaskInput) { in.Status = "done" }, true, ErrorTypeInvalidValue},
		{"Unknown priority", func(in *domain.TaskInput) { in.Priority = "urgent" }, true, ErrorTypeInvalidValue},
		{"Missing due date", func(in *domain.TaskInput) { in.DueDate = time.Time{} }, true, ErrorTypeRequired},
		{"Past due date", func(in *domain.TaskInput) { in.DueDate = today.AddDate(0, 0, -1) }, true, ErrorTypeInvalidRange},
		{"Due today", func(in *domain.TaskInput) { in.DueDate = today }, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(today.AddDate(0, 0, 7))
			tt.mutate(&in)

			err := validator.ValidateInput(in)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateInput(%+v) expected error but got nil", in)
					return
				}

				validationErr, ok := err.(*ValidationError)
				if !ok {
					t.Errorf("ValidateInput(%+v) expected ValidationError but got %T", in, err)
					return
				}

				if len(validationErr.Errors) == 0 {
					t.Errorf("ValidateInput(%+v) expected validation errors but got none", in)
					return
				}

				if validationErr.Errors[0].Type != tt.errorType {
					t.Errorf("ValidateInput(%+v) expected error type %v but got %v", in, tt.errorType, validationErr.Errors[0].Type)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateInput(%+v) expected no error but got %v", in, err)
				}
			}
		})
	}
}

func TestTaskValidator_ValidateInput_CollectsAllErrors(t *testing.T) {
	stubNow(t, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	validator := NewTaskValidator()

	err := validator.ValidateInput(domain.TaskInput{})

	validationErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("ValidateInput expected ValidationError but got %T", err)
	}

	// Empty input breaks title, description, status, priority and due date.
	if len(validationErr.Errors) != 5 {
		t.Errorf("ValidateInput expected 5 errors, got %d: %v", len(validationErr.Errors), validationErr)
	}
}

func TestTaskValidator_ValidatePatch(t *testing.T) {
	stubNow(t, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	validator := NewTaskValidator()

	emptyTitle := ""
	goodTitle := "Renamed"
	shortDescription := "x"
	badStatus := domain.Status("done")
	badPriority := domain.Priority("urgent")
	goodPriority := domain.PriorityHigh
	pastDue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	zeroDue := time.Time{}

	tests := []struct {
		name        string
		patch       domain.TaskPatch
		expectError bool
	}{
		{"Empty patch", domain.TaskPatch{}, false},
		{"Valid title change", domain.TaskPatch{Title: &goodTitle}, false},
		{"Empty title", domain.TaskPatch{Title: &emptyTitle}, true},
		{"Short description", domain.TaskPatch{Description: &shortDescription}, true},
		{"Unknown status", domain.TaskPatch{Status: &badStatus}, true},
		{"Unknown priority", domain.TaskPatch{Priority: &badPriority}, true},
		{"Valid priority change", domain.TaskPatch{Priority: &goodPriority}, false},
		{"Past due date is allowed on edit", domain.TaskPatch{DueDate: &pastDue}, false},
		{"Zero due date", domain.TaskPatch{DueDate: &zeroDue}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePatch(tt.patch)

			if tt.expectError && err == nil {
				t.Errorf("ValidatePatch(%+v) expected error but got nil", tt.patch)
			} else if !tt.expectError && err != nil {
				t.Errorf("ValidatePatch(%+v) expected no error but got %v", tt.patch, err)
			}
		})
	}
}

func TestTaskValidator_ValidateUserName(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"Valid name", "ada", false},
		{"Name with spaces", "Ada Lovelace", false},
		{"Empty name", "", true},
		{"Whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateUserName(tt.input)

			if tt.expectError && err == nil {
				t.Errorf("ValidateUserName(%q) expected error but got nil", tt.input)
			} else if !tt.expectError && err != nil {
				t.Errorf("ValidateUserName(%q) expected no error but got %v", tt.input, err)
			}
		})
	}
}

func TestTaskValidator_ParseDueDate(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{"Valid date", "2026-09-01", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"Wrong format", "01/09/2026", time.Time{}, true},
		{"Not a date", "tomorrow", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.ParseDueDate(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ParseDueDate(%q) expected error but got nil", tt.input)
				}
				if !IsValidationError(err) {
					t.Errorf("ParseDueDate(%q) expected ValidationError but got %T", tt.input, err)
				}
			} else {
				if err != nil {
					t.Errorf("ParseDueDate(%q) expected no error but got %v", tt.input, err)
				}
				if !result.Equal(tt.expected) {
					t.Errorf("ParseDueDate(%q) = %v, expected %v", tt.input, result, tt.expected)
				}
			}
		})
	}
}
