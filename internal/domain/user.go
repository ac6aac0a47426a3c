package domain

// UserScope associates a display name with an ordered collection of tasks.
// The name is the unique, case-sensitive key for the scope and is immutable
// once created. Task order is insertion order.
type UserScope struct {
	Name  string
	Tasks []Task
}

// NewUserScope creates a user scope with an empty task collection.
func NewUserScope(name string) UserScope {
	return UserScope{
		Name:  name,
		Tasks: []Task{},
	}
}

// IsValid checks if the user scope has valid data.
func (u UserScope) IsValid() bool {
	return u.Name != ""
}

// FindTask returns the index of the task with the given ID, or -1.
func (u UserScope) FindTask(id string) int {
	for i, t := range u.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// String returns the user name for display purposes.
func (u UserScope) String() string {
	return u.Name
}
