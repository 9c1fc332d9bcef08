package task

import "time"

// State is the lifecycle state of a task.
type State string

const (
	StatePending  State = "pending"
	StateUpToDate State = "up_to_date"
)

// Importance is the three-level priority used for ordering. It never affects
// scheduling.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Importances lists the allowed values from highest to lowest.
var Importances = []Importance{ImportanceHigh, ImportanceMedium, ImportanceLow}

// rank orders importances for sorting; higher ranks sort first. Unknown
// values rank zero.
func (i Importance) rank() int {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	case ImportanceLow:
		return 1
	}
	return 0
}

// Valid reports whether i is one of the allowed importance values.
func (i Importance) Valid() bool {
	return i.rank() != 0
}

// Task is a recurring chore. LastCompletedAt is set exactly when the task is
// up to date; marking it pending clears the timestamp.
type Task struct {
	ID              int64
	Description     string
	DurationMinutes int
	PeriodMinutes   int
	Importance      Importance
	State           State
	LastCompletedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
