package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/rsoler/chores-tui/internal/store"
	"github.com/rsoler/chores-tui/internal/task"
)

func sampleTask() task.Task {
	return task.Task{
		Description:     "Water plants",
		DurationMinutes: 10,
		PeriodMinutes:   1440,
		Importance:      task.ImportanceMedium,
		State:           task.StatePending,
	}
}

func TestAddAssignsIDs(t *testing.T) {
	ts := New()

	first, err := ts.Add(sampleTask())
	if err != nil {
		t.Fatalf("Add() err=%v", err)
	}
	second, err := ts.Add(sampleTask())
	if err != nil {
		t.Fatalf("Add() err=%v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("Add() assigned zero ids: %d, %d", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Fatalf("Add() reused id %d", first.ID)
	}
}

func TestGetRoundTrip(t *testing.T) {
	ts := New()
	completed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	in := sampleTask()
	in.State = task.StateUpToDate
	in.LastCompletedAt = &completed

	added, err := ts.Add(in)
	if err != nil {
		t.Fatalf("Add() err=%v", err)
	}

	got, err := ts.Get(added.ID)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if got.Description != in.Description || got.DurationMinutes != in.DurationMinutes ||
		got.PeriodMinutes != in.PeriodMinutes || got.Importance != in.Importance ||
		got.State != in.State {
		t.Errorf("Get() = %+v, want fields of %+v", got, in)
	}
	if got.LastCompletedAt == nil || !got.LastCompletedAt.Equal(completed) {
		t.Errorf("Get() LastCompletedAt=%v, want %v", got.LastCompletedAt, completed)
	}
}

func TestGetNotFound(t *testing.T) {
	ts := New()
	if _, err := ts.Get(42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get(42) err=%v, want ErrNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	ts := New()
	added, err := ts.Add(sampleTask())
	if err != nil {
		t.Fatalf("Add() err=%v", err)
	}

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	done := added.MarkDone(now)
	if err := ts.Update(done); err != nil {
		t.Fatalf("Update() err=%v", err)
	}

	got, err := ts.Get(added.ID)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if got.State != task.StateUpToDate || got.LastCompletedAt == nil || !got.LastCompletedAt.Equal(now) {
		t.Errorf("Update not persisted: state=%q completed=%v", got.State, got.LastCompletedAt)
	}
}

func TestUpdateNotFound(t *testing.T) {
	ts := New()
	missing := sampleTask()
	missing.ID = 42
	if err := ts.Update(missing); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update(missing) err=%v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ts := New()
	added, err := ts.Add(sampleTask())
	if err != nil {
		t.Fatalf("Add() err=%v", err)
	}

	if err := ts.Delete(added.ID); err != nil {
		t.Fatalf("Delete() err=%v", err)
	}
	if _, err := ts.Get(added.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get after delete err=%v, want ErrNotFound", err)
	}
	if err := ts.Delete(added.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Delete err=%v, want ErrNotFound", err)
	}
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	ts := New()
	first, err := ts.Add(sampleTask())
	if err != nil {
		t.Fatalf("Add() err=%v", err)
	}
	if err := ts.Delete(first.ID); err != nil {
		t.Fatalf("Delete() err=%v", err)
	}

	second, err := ts.Add(sampleTask())
	if err != nil {
		t.Fatalf("Add() err=%v", err)
	}
	if second.ID == first.ID {
		t.Errorf("Add() reused deleted id %d", first.ID)
	}
}

func TestListIsOrderedAndIsolated(t *testing.T) {
	ts := New()
	for _, desc := range []string{"First", "Second", "Third"} {
		in := sampleTask()
		in.Description = desc
		if _, err := ts.Add(in); err != nil {
			t.Fatalf("Add() err=%v", err)
		}
	}

	tasks, err := ts.List()
	if err != nil {
		t.Fatalf("List() err=%v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("List() returned %d tasks, want 3", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].ID >= tasks[i].ID {
			t.Fatalf("List() not ordered by id: %v", tasks)
		}
	}

	// Mutating a returned task must not affect the stored copy.
	tasks[0].Description = "changed"
	got, err := ts.Get(tasks[0].ID)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if got.Description == "changed" {
		t.Errorf("List() returned a shared reference to stored task")
	}
}

func TestRegisteredBackend(t *testing.T) {
	s, err := store.Open("memory", "")
	if err != nil {
		t.Fatalf("store.Open(memory) err=%v", err)
	}
	defer s.Close()

	if _, err := s.Add(sampleTask()); err != nil {
		t.Errorf("Add() via registry err=%v", err)
	}
}
