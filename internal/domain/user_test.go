package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUserScope(t *testing.T) {
	user := NewUserScope("Ada")

	assert.Equal(t, "Ada", user.Name)
	assert.NotNil(t, user.Tasks)
	assert.Empty(t, user.Tasks)
	assert.True(t, user.IsValid())
}

func TestUserScope_IsValid(t *testing.T) {
	assert.False(t, UserScope{}.IsValid())
	assert.True(t, UserScope{Name: "Grace"}.IsValid())
}

func TestUserScope_FindTask(t *testing.T) {
	due := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	user := UserScope{
		Name: "Ada",
		Tasks: []Task{
			{ID: "a", Title: "first", Status: StatusPending, Priority: PriorityLow, DueDate: due},
			{ID: "b", Title: "second", Status: StatusPending, Priority: PriorityLow, DueDate: due},
		},
	}

	tests := []struct {
		name     string
		id       string
		expected int
	}{
		{name: "finds first task", id: "a", expected: 0},
		{name: "finds second task", id: "b", expected: 1},
		{name: "missing id returns -1", id: "c", expected: -1},
		{name: "empty id returns -1", id: "", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, user.FindTask(tt.id))
		})
	}
}
