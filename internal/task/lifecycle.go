package task

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports the field rejected on create or edit and why. No
// mutation is applied when validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Input carries the user-supplied fields for creating or editing a task.
// Duration and Period are human time strings ("30m", "2h", "1d", "1w").
type Input struct {
	Description string
	Duration    string
	Period      string
	Importance  Importance
}

type parsedInput struct {
	description     string
	durationMinutes int
	periodMinutes   int
}

func validate(in Input) (parsedInput, error) {
	// Descriptions are single-line; normalize here so every backend stores
	// and round-trips the same text.
	desc := strings.TrimSpace(strings.ReplaceAll(in.Description, "\n", " "))
	if desc == "" {
		return parsedInput{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	duration, err := ParseDuration(in.Duration)
	if err != nil {
		return parsedInput{}, &ValidationError{Field: "duration", Reason: err.Error()}
	}
	period, err := ParseDuration(in.Period)
	if err != nil {
		return parsedInput{}, &ValidationError{Field: "period", Reason: err.Error()}
	}
	if !in.Importance.Valid() {
		return parsedInput{}, &ValidationError{Field: "importance", Reason: fmt.Sprintf("unknown importance %q", string(in.Importance))}
	}
	return parsedInput{description: desc, durationMinutes: duration, periodMinutes: period}, nil
}

// New validates input and returns a fresh pending task. The returned task has
// no ID; the store assigns one on insert.
func New(in Input) (Task, error) {
	p, err := validate(in)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Description:     p.description,
		DurationMinutes: p.durationMinutes,
		PeriodMinutes:   p.periodMinutes,
		Importance:      in.Importance,
		State:           StatePending,
	}, nil
}

// ApplyEdit validates input and returns a copy of the task with the editable
// fields replaced. State and the completion timestamp are untouched.
func (t Task) ApplyEdit(in Input) (Task, error) {
	p, err := validate(in)
	if err != nil {
		return Task{}, err
	}
	t.Description = p.description
	t.DurationMinutes = p.durationMinutes
	t.PeriodMinutes = p.periodMinutes
	t.Importance = in.Importance
	return t, nil
}

// MarkDone records a completion at now. Marking an already up-to-date task
// done refreshes the timestamp, restarting its period.
func (t Task) MarkDone(now time.Time) Task {
	t.State = StateUpToDate
	t.LastCompletedAt = &now
	return t
}

// MarkPending reverts the task to pending and clears the completion
// timestamp. No-op on a task that is already pending.
func (t Task) MarkPending() Task {
	t.State = StatePending
	t.LastCompletedAt = nil
	return t
}

// CheckExpiry reverts an up-to-date task whose period has elapsed. The bool
// reports whether a transition happened; calling CheckExpiry again on the
// result is a no-op, so redundant or concurrent sweeps are safe.
func (t Task) CheckExpiry(now time.Time) (Task, bool) {
	if t.State != StateUpToDate {
		return t, false
	}
	if TimeUntilDue(t, now) > 0 {
		return t, false
	}
	return t.MarkPending(), true
}
