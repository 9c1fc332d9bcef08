package task

import (
	"sort"
	"time"
)

// Sort filters tasks to those in the given state and orders them for display.
// Up-to-date tasks list soonest-due first; ties there, and all pending tasks,
// order by importance, then estimated duration, then period (largest first),
// with description as the final tie break so the order is deterministic.
func Sort(tasks []Task, state State, now time.Time) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.State == state {
			filtered = append(filtered, t)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if state == StateUpToDate {
			da, db := TimeUntilDue(a, now), TimeUntilDue(b, now)
			if da != db {
				return da < db
			}
		}
		if a.Importance.rank() != b.Importance.rank() {
			return a.Importance.rank() > b.Importance.rank()
		}
		if a.DurationMinutes != b.DurationMinutes {
			return a.DurationMinutes > b.DurationMinutes
		}
		if a.PeriodMinutes != b.PeriodMinutes {
			return a.PeriodMinutes > b.PeriodMinutes
		}
		return a.Description < b.Description
	})

	return filtered
}
