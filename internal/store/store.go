package store

import (
	"errors"

	"github.com/rsoler/chores-tui/internal/task"
)

// ErrNotFound is returned when no task exists with the requested id.
var ErrNotFound = errors.New("task not found")

// Store is the persistence collaborator. It owns task ids and storage and
// must round-trip every field unchanged; validation and transition rules
// live in the task package.
type Store interface {
	// Add inserts a task, assigns its id and returns the stored task.
	Add(t task.Task) (task.Task, error)

	// Get retrieves a task by id, or ErrNotFound.
	Get(id int64) (task.Task, error)

	// List returns all tasks.
	List() ([]task.Task, error)

	// Update replaces the stored task with the same id, or ErrNotFound.
	Update(t task.Task) error

	// Delete removes a task by id, or ErrNotFound.
	Delete(id int64) error

	// Close releases backend resources.
	Close() error
}

// Factory opens a store instance. The path argument is backend-specific: a
// database file path for sqlite, ignored by the memory backend.
type Factory func(path string) (Store, error)
