package memory

import (
	"sort"
	"sync"

	"github.com/rsoler/chores-tui/internal/store"
	"github.com/rsoler/chores-tui/internal/task"
)

// TaskStore keeps tasks in memory. Used by tests and for throwaway
// `-store memory` runs; nothing survives the process.
type TaskStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]task.Task
}

// New creates an empty in-memory store.
func New() *TaskStore {
	return &TaskStore{
		tasks: make(map[int64]task.Task),
	}
}

// clone copies t so callers never share the completion timestamp with the
// stored snapshot.
func clone(t task.Task) task.Task {
	if t.LastCompletedAt != nil {
		at := *t.LastCompletedAt
		t.LastCompletedAt = &at
	}
	return t
}

func (ts *TaskStore) Add(t task.Task) (task.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.nextID++
	t.ID = ts.nextID
	ts.tasks[t.ID] = clone(t)

	return t, nil
}

func (ts *TaskStore) Get(id int64) (task.Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	t, ok := ts.tasks[id]
	if !ok {
		return task.Task{}, store.ErrNotFound
	}
	return clone(t), nil
}

func (ts *TaskStore) List() ([]task.Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	tasks := make([]task.Task, 0, len(ts.tasks))
	for _, t := range ts.tasks {
		tasks = append(tasks, clone(t))
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

func (ts *TaskStore) Update(t task.Task) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tasks[t.ID]; !ok {
		return store.ErrNotFound
	}
	ts.tasks[t.ID] = clone(t)
	return nil
}

func (ts *TaskStore) Delete(id int64) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tasks[id]; !ok {
		return store.ErrNotFound
	}
	delete(ts.tasks, id)
	return nil
}

func (ts *TaskStore) Close() error {
	return nil
}

func init() {
	store.Register("memory", func(string) (store.Store, error) { return New(), nil })
}
