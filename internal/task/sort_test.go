package task

import (
	"testing"
	"time"
)

func pendingTask(desc string, importance Importance, duration, period int) Task {
	return Task{
		Description:     desc,
		DurationMinutes: duration,
		PeriodMinutes:   period,
		Importance:      importance,
		State:           StatePending,
	}
}

func descriptions(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Description
	}
	return out
}

func assertOrder(t *testing.T, got []Task, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Sort returned %d tasks (%v), want %d", len(got), descriptions(got), len(want))
	}
	for i, desc := range want {
		if got[i].Description != desc {
			t.Fatalf("Sort order %v, want %v", descriptions(got), want)
		}
	}
}

func TestSort_PendingByImportanceDurationPeriod(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		pendingTask("Water plants", ImportanceLow, 10, 1440),
		pendingTask("Clean bathroom", ImportanceHigh, 45, 10080),
		pendingTask("Take out trash", ImportanceHigh, 10, 1440),
		pendingTask("Vacuum", ImportanceMedium, 30, 10080),
	}

	got := Sort(tasks, StatePending, now)
	assertOrder(t, got, "Clean bathroom", "Take out trash", "Vacuum", "Water plants")
}

func TestSort_TieBrokenByDescription(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		pendingTask("Zeta", ImportanceHigh, 60, 120),
		pendingTask("Alpha", ImportanceHigh, 60, 120),
	}

	got := Sort(tasks, StatePending, now)
	assertOrder(t, got, "Alpha", "Zeta")
}

func TestSort_PeriodBreaksDurationTie(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		pendingTask("Weekly", ImportanceMedium, 30, 10080),
		pendingTask("Daily", ImportanceMedium, 30, 1440),
	}

	got := Sort(tasks, StatePending, now)
	assertOrder(t, got, "Weekly", "Daily")
}

func TestSort_UpToDateBySoonestDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// Due in 5 minutes, low importance.
	soonDone := now.Add(-25 * time.Minute)
	soon := upToDateTask(soonDone, 30)
	soon.Description = "Due soon"
	soon.Importance = ImportanceLow

	// Due in 2 hours, high importance. Soonest-due still wins.
	laterDone := now.Add(-30 * time.Minute)
	later := upToDateTask(laterDone, 150)
	later.Description = "Due later"
	later.Importance = ImportanceHigh

	got := Sort([]Task{later, soon}, StateUpToDate, now)
	assertOrder(t, got, "Due soon", "Due later")
}

func TestSort_FiltersByState(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	done := now.Add(-10 * time.Minute)

	up := upToDateTask(done, 60)
	up.Description = "Done already"

	tasks := []Task{pendingTask("Still open", ImportanceHigh, 10, 60), up}

	got := Sort(tasks, StatePending, now)
	assertOrder(t, got, "Still open")

	got = Sort(tasks, StateUpToDate, now)
	assertOrder(t, got, "Done already")
}
