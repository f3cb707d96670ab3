package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

var _ Persistence = (*Memory)(nil)

func TestMemoryWatch(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := m.Stamp("2024-06-10"); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	select {
	case evt := <-ch:
		if evt.Type != EventStampsChanged {
			t.Fatalf("expected stamps event, got %s", evt.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	cancel()
	for range ch {
	}
}

func TestMemorySeedsTasks(t *testing.T) {
	m := NewMemory(
		task.Task{Title: "b", DueDate: "2024-06-11", Time: "09:00"},
		task.Task{Title: "a", DueDate: "2024-06-10", Time: "09:00"},
	)
	all := m.ListTasks(context.Background())
	if len(all) != 2 || all[0].Title != "a" {
		t.Fatalf("unexpected tasks %v", all)
	}
	if all[0].ID == all[1].ID {
		t.Fatalf("expected distinct ids")
	}
}

func TestMemoryRejectsBadIDs(t *testing.T) {
	m := NewMemory()
	if err := m.StoreTask(&task.Task{ID: "../x", Title: "x"}); !errors.Is(err, task.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if _, err := m.Task("../x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(m.ListTasks(context.Background())) != 0 {
		t.Fatal("rejected task must not be stored")
	}
}
