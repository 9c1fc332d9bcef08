package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rsoler/chores-tui/internal/store"
	"github.com/rsoler/chores-tui/internal/task"
)

// TaskStore persists tasks in a sqlite database.
type TaskStore struct {
	conn *sql.DB
}

// Open creates a new database connection.
func Open(dbPath string) (*TaskStore, error) {
	// Check if DB exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s\nRun 'chores-tui -init' to create it", dbPath)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ts := &TaskStore{conn: conn}

	// Run any pending migrations
	if err := ts.RunMigrations(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return ts, nil
}

// Close closes the database connection.
func (ts *TaskStore) Close() error {
	return ts.conn.Close()
}

const taskColumns = `id, description, duration_minutes, period_minutes, importance, state, last_completed_at, created_at, updated_at`

func scanTask(scan func(...any) error) (task.Task, error) {
	var t task.Task
	var importance, state string
	var lastCompleted sql.NullTime

	err := scan(
		&t.ID, &t.Description, &t.DurationMinutes, &t.PeriodMinutes,
		&importance, &state, &lastCompleted,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return task.Task{}, err
	}

	t.Importance = task.Importance(importance)
	t.State = task.State(state)
	if lastCompleted.Valid {
		at := lastCompleted.Time
		t.LastCompletedAt = &at
	}

	return t, nil
}

func nullCompletedAt(t task.Task) sql.NullTime {
	if t.LastCompletedAt == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t.LastCompletedAt, Valid: true}
}

// Add inserts a task and returns it with the assigned id.
func (ts *TaskStore) Add(t task.Task) (task.Task, error) {
	query := `
		INSERT INTO tasks (
			description, duration_minutes, period_minutes, importance,
			state, last_completed_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`

	result, err := ts.conn.Exec(query,
		t.Description,
		t.DurationMinutes,
		t.PeriodMinutes,
		string(t.Importance),
		string(t.State),
		nullCompletedAt(t),
	)
	if err != nil {
		return task.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return task.Task{}, fmt.Errorf("getting insert ID: %w", err)
	}

	return ts.Get(id)
}

// Get retrieves a single task by id.
func (ts *TaskStore) Get(id int64) (task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	row := ts.conn.QueryRow(query, id)
	t, err := scanTask(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, store.ErrNotFound
	}
	if err != nil {
		return task.Task{}, fmt.Errorf("scanning task: %w", err)
	}

	return t, nil
}

// List returns all tasks ordered by id.
func (ts *TaskStore) List() ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id`

	rows, err := ts.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update replaces all mutable fields of a task.
func (ts *TaskStore) Update(t task.Task) error {
	query := `
		UPDATE tasks
		SET description = ?,
		    duration_minutes = ?,
		    period_minutes = ?,
		    importance = ?,
		    state = ?,
		    last_completed_at = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := ts.conn.Exec(query,
		t.Description,
		t.DurationMinutes,
		t.PeriodMinutes,
		string(t.Importance),
		string(t.State),
		nullCompletedAt(t),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	return nil
}

// Delete permanently deletes a task.
func (ts *TaskStore) Delete(id int64) error {
	result, err := ts.conn.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func init() {
	store.Register("sqlite", func(path string) (store.Store, error) { return Open(path) })
}
