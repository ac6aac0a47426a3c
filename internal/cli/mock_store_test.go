package cli

import (
	"fmt"
	"time"

	"taskvault/internal/config"
	"taskvault/internal/domain"
	"taskvault/internal/errors"
	"taskvault/internal/query"
	"taskvault/internal/store"
)

// mockStore implements the store.Store interface for testing. It keeps the
// same semantics as the real store but holds everything in memory and records
// persistence calls instead of performing them.
type mockStore struct {
	users       []domain.UserScope
	currentUser *string
	filterKey   domain.FilterKey
	searchQuery string
	nextID      int

	rehydrateCalled    bool
	clearStorageCalled bool
}

// newMockStore creates a new mock store instance
func newMockStore() *mockStore {
	return &mockStore{
		users:     []domain.UserScope{},
		filterKey: domain.FilterAll,
		nextID:    1,
	}
}

func (m *mockStore) findUser(name string) *domain.UserScope {
	for i := range m.users {
		if m.users[i].Name == name {
			return &m.users[i]
		}
	}
	return nil
}

func (m *mockStore) currentScope(operation string) (*domain.UserScope, error) {
	if m.currentUser == nil {
		return nil, errors.NewUnauthorizedError(operation)
	}
	return m.findUser(*m.currentUser), nil
}

func (m *mockStore) RegisterUser(name string) error {
	if m.findUser(name) != nil {
		return nil
	}
	m.users = append(m.users, domain.NewUserScope(name))
	return nil
}

func (m *mockStore) SetCurrentUser(name string) error {
	if m.findUser(name) == nil {
		return errors.NewUserNotFoundError(name)
	}
	m.currentUser = &name
	return nil
}

func (m *mockStore) Logout() error {
	m.currentUser = nil
	return nil
}

func (m *mockStore) CurrentUser() (string, bool) {
	if m.currentUser == nil {
		return "", false
	}
	return *m.currentUser, true
}

func (m *mockStore) UserNames() []string {
	names := make([]string, len(m.users))
	for i, u := range m.users {
		names[i] = u.Name
	}
	return names
}

func (m *mockStore) AddTask(in domain.TaskInput) (*domain.Task, error) {
	scope, err := m.currentScope("add task")
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(fmt.Sprintf("task-%d", m.nextID), in, time.Now())
	m.nextID++
	scope.Tasks = append(scope.Tasks, task)
	return &task, nil
}

func (m *mockStore) UpdateTask(id string, patch domain.TaskPatch) (*domain.Task, error) {
	scope, err := m.currentScope("update task")
	if err != nil {
		return nil, err
	}

	i := scope.FindTask(id)
	if i < 0 {
		return nil, errors.NewTaskNotFoundError(id)
	}

	scope.Tasks[i] = patch.Apply(scope.Tasks[i])
	updated := scope.Tasks[i]
	return &updated, nil
}

func (m *mockStore) DeleteTask(id string) error {
	scope, err := m.currentScope("delete task")
	if err != nil {
		return err
	}

	i := scope.FindTask(id)
	if i < 0 {
		return errors.NewTaskNotFoundError(id)
	}

	scope.Tasks = append(scope.Tasks[:i], scope.Tasks[i+1:]...)
	return nil
}

func (m *mockStore) ToggleTaskStatus(id string) (*domain.Task, error) {
	scope, err := m.currentScope("toggle task status")
	if err != nil {
		return nil, err
	}

	i := scope.FindTask(id)
	if i < 0 {
		return nil, errors.NewTaskNotFoundError(id)
	}

	scope.Tasks[i].Status = scope.Tasks[i].Status.Toggle()
	toggled := scope.Tasks[i]
	return &toggled, nil
}

func (m *mockStore) ClearAllTasks() error {
	if m.currentUser == nil {
		return nil
	}
	m.findUser(*m.currentUser).Tasks = []domain.Task{}
	return nil
}

func (m *mockStore) Tasks(by domain.SortBy) ([]domain.Task, error) {
	scope, err := m.currentScope("list tasks")
	if err != nil {
		return nil, err
	}
	return query.Sort(scope.Tasks, by), nil
}

func (m *mockStore) TasksByTime() (*query.GroupedTasks, error) {
	scope, err := m.currentScope("group tasks")
	if err != nil {
		return nil, err
	}
	grouped := query.GroupByTime(scope.Tasks)
	return &grouped, nil
}

func (m *mockStore) FilteredTasks() []domain.Task {
	if m.currentUser == nil {
		return []domain.Task{}
	}
	scope := m.findUser(*m.currentUser)
	return query.SearchByText(query.FilterByCategory(scope.Tasks, m.filterKey), m.searchQuery)
}

func (m *mockStore) FilterKey() domain.FilterKey {
	return m.filterKey
}

func (m *mockStore) SearchQuery() string {
	return m.searchQuery
}

func (m *mockStore) SetFilterKey(key domain.FilterKey) {
	m.filterKey = key
}

func (m *mockStore) SetSearchQuery(q string) {
	m.searchQuery = q
}

func (m *mockStore) Rehydrate() error {
	m.rehydrateCalled = true
	return nil
}

func (m *mockStore) ClearStorage() error {
	m.clearStorageCalled = true
	m.users = []domain.UserScope{}
	m.currentUser = nil
	return nil
}

var _ store.Store = (*mockStore)(nil)

// execute runs the CLI against the given mock store. A fresh root command is
// built per call so flag state never leaks between invocations.
func execute(ms *mockStore, args ...string) error {
	root := NewRootCommand(ms, config.NewConfig())
	root.SetArgs(args)
	return root.Execute()
}

// loggedInMockStore returns a mock store with user ada registered and current.
func loggedInMockStore() *mockStore {
	ms := newMockStore()
	_ = ms.RegisterUser("ada")
	_ = ms.SetCurrentUser("ada")
	return ms
}
