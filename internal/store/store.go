package store

import (
	"time"

	"github.com/oklog/ulid/v2"

	"taskvault/internal/domain"
	"taskvault/internal/errors"
	"taskvault/internal/logging"
	"taskvault/internal/query"
	"taskvault/internal/storage/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Store owns all user scopes, the current user pointer, the active filter
// and search criteria, and the cached filtered view. Every mutation runs to
// completion before the next is accepted: collection update, view
// recomputation, then a write-through commit to durable storage.
type Store interface {
	// User scope operations
	RegisterUser(name string) error
	SetCurrentUser(name string) error
	Logout() error
	CurrentUser() (string, bool)
	UserNames() []string

	// Task mutation operations (require a current user)
	AddTask(in domain.TaskInput) (*domain.Task, error)
	UpdateTask(id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(id string) error
	ToggleTaskStatus(id string) (*domain.Task, error)
	ClearAllTasks() error

	// Query and derivation operations
	Tasks(by domain.SortBy) ([]domain.Task, error)
	TasksByTime() (*query.GroupedTasks, error)
	FilteredTasks() []domain.Task
	FilterKey() domain.FilterKey
	SearchQuery() string
	SetFilterKey(key domain.FilterKey)
	SetSearchQuery(q string)

	// Persistence operations
	Rehydrate() error
	ClearStorage() error
}

type taskStore struct {
	storage    sqlite.Storage
	storageKey string
	newID      func() string

	users       []domain.UserScope
	currentUser *string
	filterKey   domain.FilterKey
	searchQuery string

	// filteredTasks is a materialized view of
	// search(filter(current user's tasks)). It holds no independent truth
	// and is recomputed after every operation that could affect it.
	filteredTasks []domain.Task
}

// New creates a Store backed by the given storage, persisting under the
// given key.
func New(storage sqlite.Storage, storageKey string) Store {
	return &taskStore{
		storage:       storage,
		storageKey:    storageKey,
		newID:         newTaskID,
		users:         []domain.UserScope{},
		filterKey:     domain.FilterAll,
		filteredTasks: []domain.Task{},
	}
}

// newTaskID generates an opaque unique task identifier.
func newTaskID() string {
	return ulid.MustNew(ulid.Timestamp(timeNow()), ulid.DefaultEntropy()).String()
}

// RegisterUser creates a user scope with an empty task collection.
// Re-registering an existing name is a no-op, not an error.
func (s *taskStore) RegisterUser(name string) error {
	if s.findUser(name) != nil {
		return nil
	}

	s.users = append(s.users, domain.NewUserScope(name))
	return s.commit()
}

// SetCurrentUser makes an existing user scope current.
func (s *taskStore) SetCurrentUser(name string) error {
	if s.findUser(name) == nil {
		return errors.NewUserNotFoundError(name)
	}

	s.currentUser = &name
	s.updateFilteredTasks()
	return s.commit()
}

// Logout clears the current user. Registered users are retained.
func (s *taskStore) Logout() error {
	s.currentUser = nil
	s.updateFilteredTasks()
	return s.commit()
}

// CurrentUser returns the current user name, if one is set.
func (s *taskStore) CurrentUser() (string, bool) {
	if s.currentUser == nil {
		return "", false
	}
	return *s.currentUser, true
}

// UserNames returns all registered user names in registration order.
func (s *taskStore) UserNames() []string {
	names := make([]string, len(s.users))
	for i, u := range s.users {
		names[i] = u.Name
	}
	return names
}

// AddTask appends a new task to the current user's collection, assigning a
// fresh ID and the mutation time as CreatedAt.
func (s *taskStore) AddTask(in domain.TaskInput) (*domain.Task, error) {
	scope, err := s.currentScope("add task")
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(s.newID(), in, timeNow())
	scope.Tasks = append(scope.Tasks, task)
	s.updateFilteredTasks()
	if err := s.commit(); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask merges the patch into the task with the given ID. ID and
// CreatedAt are never touched.
func (s *taskStore) UpdateTask(id string, patch domain.TaskPatch) (*domain.Task, error) {
	scope, err := s.currentScope("update task")
	if err != nil {
		return nil, err
	}

	i := scope.FindTask(id)
	if i < 0 {
		return nil, errors.NewTaskNotFoundError(id)
	}

	scope.Tasks[i] = patch.Apply(scope.Tasks[i])
	updated := scope.Tasks[i]
	s.updateFilteredTasks()
	if err := s.commit(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes the task with the given ID from the current user's
// collection.
func (s *taskStore) DeleteTask(id string) error {
	scope, err := s.currentScope("delete task")
	if err != nil {
		return err
	}

	i := scope.FindTask(id)
	if i < 0 {
		return errors.NewTaskNotFoundError(id)
	}

	scope.Tasks = append(scope.Tasks[:i], scope.Tasks[i+1:]...)
	s.updateFilteredTasks()
	return s.commit()
}

// ToggleTaskStatus flips the task between pending and completed.
func (s *taskStore) ToggleTaskStatus(id string) (*domain.Task, error) {
	scope, err := s.currentScope("toggle task status")
	if err != nil {
		return nil, err
	}

	i := scope.FindTask(id)
	if i < 0 {
		return nil, errors.NewTaskNotFoundError(id)
	}

	scope.Tasks[i].Status = scope.Tasks[i].Status.Toggle()
	toggled := scope.Tasks[i]
	s.updateFilteredTasks()
	if err := s.commit(); err != nil {
		return nil, err
	}
	return &toggled, nil
}

// ClearAllTasks empties the current user's task collection. It is a no-op,
// not an error, when no user is logged in.
func (s *taskStore) ClearAllTasks() error {
	if s.currentUser == nil {
		return nil
	}
	scope := s.findUser(*s.currentUser)

	scope.Tasks = []domain.Task{}
	s.updateFilteredTasks()
	return s.commit()
}

// Tasks returns a copy of the current user's tasks, optionally sorted.
func (s *taskStore) Tasks(by domain.SortBy) ([]domain.Task, error) {
	scope, err := s.currentScope("list tasks")
	if err != nil {
		return nil, err
	}
	return query.Sort(scope.Tasks, by), nil
}

// TasksByTime buckets the current user's tasks into today, overdue and
// upcoming.
func (s *taskStore) TasksByTime() (*query.GroupedTasks, error) {
	scope, err := s.currentScope("group tasks")
	if err != nil {
		return nil, err
	}
	grouped := query.GroupByTime(scope.Tasks)
	return &grouped, nil
}

// FilteredTasks returns a copy of the cached derived view.
func (s *taskStore) FilteredTasks() []domain.Task {
	view := make([]domain.Task, len(s.filteredTasks))
	copy(view, s.filteredTasks)
	return view
}

// FilterKey returns the active category filter.
func (s *taskStore) FilterKey() domain.FilterKey {
	return s.filterKey
}

// SearchQuery returns the active free-text filter.
func (s *taskStore) SearchQuery() string {
	return s.searchQuery
}

// SetFilterKey sets the active category filter and recomputes the derived
// view. Filter state is transient and is not persisted.
func (s *taskStore) SetFilterKey(key domain.FilterKey) {
	s.filterKey = key
	s.updateFilteredTasks()
}

// SetSearchQuery sets the free-text filter and recomputes the derived view.
func (s *taskStore) SetSearchQuery(q string) {
	s.searchQuery = q
	s.updateFilteredTasks()
}

// Rehydrate repopulates users and the current user from durable storage.
// A missing blob is a no-op. A malformed blob is skipped with a warning and
// in-memory state keeps its prior defaults.
func (s *taskStore) Rehydrate() error {
	data, ok, err := s.storage.Load(s.storageKey)
	if err != nil {
		return err
	}
	if !ok {
		logging.Debugln("no persisted state to rehydrate")
		return nil
	}

	users, currentUser, err := decodeState(data)
	if err != nil {
		logging.Warnf("skipping rehydration: %v", err)
		return nil
	}

	s.users = users
	s.currentUser = currentUser
	s.updateFilteredTasks()
	logging.Debugf("rehydrated %d user scopes\n", len(users))
	return nil
}

// ClearStorage deletes the persisted blob and resets in-memory state.
func (s *taskStore) ClearStorage() error {
	if err := s.storage.Delete(s.storageKey); err != nil {
		return err
	}

	s.users = []domain.UserScope{}
	s.currentUser = nil
	s.updateFilteredTasks()
	return nil
}

// updateFilteredTasks recomputes the cached derived view from the current
// user's authoritative task list, the filter key and the search query.
func (s *taskStore) updateFilteredTasks() {
	if s.currentUser == nil {
		s.filteredTasks = []domain.Task{}
		return
	}
	scope := s.findUser(*s.currentUser)

	filtered := query.FilterByCategory(scope.Tasks, s.filterKey)
	s.filteredTasks = query.SearchByText(filtered, s.searchQuery)
}

// commit writes the full {users, currentUser} state through to durable
// storage. Called at the end of every mutation.
func (s *taskStore) commit() error {
	data, err := encodeState(s.users, s.currentUser)
	if err != nil {
		return err
	}
	return s.storage.Save(s.storageKey, data)
}

// currentScope returns the current user's scope, or an unauthorized error
// naming the attempted operation.
func (s *taskStore) currentScope(operation string) (*domain.UserScope, error) {
	if s.currentUser == nil {
		return nil, errors.NewUnauthorizedError(operation)
	}
	return s.findUser(*s.currentUser), nil
}

func (s *taskStore) findUser(name string) *domain.UserScope {
	for i := range s.users {
		if s.users[i].Name == name {
			return &s.users[i]
		}
	}
	return nil
}
