package store

import (
	"encoding/json"
	"fmt"
	"time"

	"taskvault/internal/domain"
	"taskvault/internal/errors"
)

// Wire formats for the persisted blob. Due dates are date-only, creation
// timestamps are full RFC3339.
const (
	dueDateFormat   = "2006-01-02"
	createdAtFormat = time.RFC3339
)

// persistedBlob is the durable layout: {"state":{"users":[...],"currentUser":...}}
type persistedBlob struct {
	State persistedState `json:"state"`
}

type persistedState struct {
	Users       []persistedUser `json:"users"`
	CurrentUser *string         `json:"currentUser"`
}

type persistedUser struct {
	Name  string          `json:"name"`
	Tasks []persistedTask `json:"tasks"`
}

type persistedTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
	CreatedAt   string `json:"createdAt"`
	Priority    string `json:"priority"`
}

// encodeState serializes users and the current user pointer to the blob layout.
func encodeState(users []domain.UserScope, currentUser *string) ([]byte, error) {
	state := persistedState{
		Users:       make([]persistedUser, len(users)),
		CurrentUser: currentUser,
	}
	for i, u := range users {
		state.Users[i] = userToPersisted(u)
	}

	data, err := json.Marshal(persistedBlob{State: state})
	if err != nil {
		return nil, errors.NewStorageError("encode state", err)
	}
	return data, nil
}

// decodeState parses a persisted blob back into domain state. Any parse
// failure or shape violation is reported as a malformed-state error.
func decodeState(data []byte) ([]domain.UserScope, *string, error) {
	var blob persistedBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, nil, errors.NewMalformedStateError("blob does not parse as JSON", err)
	}

	users := make([]domain.UserScope, len(blob.State.Users))
	seen := make(map[string]bool)
	for i, pu := range blob.State.Users {
		if pu.Name == "" {
			return nil, nil, errors.NewMalformedStateError(fmt.Sprintf("user %d has no name", i), nil)
		}
		if seen[pu.Name] {
			return nil, nil, errors.NewMalformedStateError(fmt.Sprintf("duplicate user name: %s", pu.Name), nil)
		}
		seen[pu.Name] = true

		user, err := userFromPersisted(pu)
		if err != nil {
			return nil, nil, err
		}
		users[i] = user
	}

	if blob.State.CurrentUser != nil && !seen[*blob.State.CurrentUser] {
		return nil, nil, errors.NewMalformedStateError(fmt.Sprintf("current user is not registered: %s", *blob.State.CurrentUser), nil)
	}

	return users, blob.State.CurrentUser, nil
}

func userToPersisted(u domain.UserScope) persistedUser {
	pu := persistedUser{
		Name:  u.Name,
		Tasks: make([]persistedTask, len(u.Tasks)),
	}
	for i, t := range u.Tasks {
		pu.Tasks[i] = taskToPersisted(t)
	}
	return pu
}

func userFromPersisted(pu persistedUser) (domain.UserScope, error) {
	user := domain.NewUserScope(pu.Name)
	user.Tasks = make([]domain.Task, len(pu.Tasks))
	ids := make(map[string]bool)
	for i, pt := range pu.Tasks {
		task, err := taskFromPersisted(pt)
		if err != nil {
			return domain.UserScope{}, err
		}
		if ids[task.ID] {
			return domain.UserScope{}, errors.NewMalformedStateError(fmt.Sprintf("duplicate task id for user %s: %s", pu.Name, task.ID), nil)
		}
		ids[task.ID] = true
		user.Tasks[i] = task
	}
	return user, nil
}

func taskToPersisted(t domain.Task) persistedTask {
	return persistedTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate.Format(dueDateFormat),
		CreatedAt:   t.CreatedAt.Format(createdAtFormat),
		Priority:    string(t.Priority),
	}
}

func taskFromPersisted(pt persistedTask) (domain.Task, error) {
	if pt.ID == "" {
		return domain.Task{}, errors.NewMalformedStateError("task has no id", nil)
	}

	status := domain.Status(pt.Status)
	if !status.IsValid() {
		return domain.Task{}, errors.NewMalformedStateError(fmt.Sprintf("unknown status for task %s: %q", pt.ID, pt.Status), nil)
	}

	priority := domain.Priority(pt.Priority)
	if !priority.IsValid() {
		return domain.Task{}, errors.NewMalformedStateError(fmt.Sprintf("unknown priority for task %s: %q", pt.ID, pt.Priority), nil)
	}

	dueDate, err := time.Parse(dueDateFormat, pt.DueDate)
	if err != nil {
		return domain.Task{}, errors.NewMalformedStateError(fmt.Sprintf("unparseable due date for task %s: %q", pt.ID, pt.DueDate), err)
	}

	createdAt, err := time.Parse(createdAtFormat, pt.CreatedAt)
	if err != nil {
		return domain.Task{}, errors.NewMalformedStateError(fmt.Sprintf("unparseable creation time for task %s: %q", pt.ID, pt.CreatedAt), err)
	}

	return domain.Task{
		ID:          pt.ID,
		Title:       pt.Title,
		Description: pt.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     domain.DateOnly(dueDate),
		CreatedAt:   createdAt,
	}, nil
}
