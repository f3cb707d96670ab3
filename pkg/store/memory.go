package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// Memory is a Persistence that keeps everything in process. It backs tests and
// dry runs.
type Memory struct {
	mu       sync.Mutex
	counter  int
	tasks    map[string]task.Task
	stamps   map[string]struct{}
	goals    map[string]string
	watchers []chan Event
}

// NewMemory returns an empty in-memory store seeded with tasks.
func NewMemory(tasks ...task.Task) *Memory {
	m := &Memory{
		tasks:  make(map[string]task.Task),
		stamps: make(map[string]struct{}),
		goals:  make(map[string]string),
	}
	for _, t := range tasks {
		_ = m.StoreTask(&t)
	}
	return m
}

func (m *Memory) ListTasks(_ context.Context) []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	sortTasks(out)
	return out
}

func (m *Memory) Task(id string) (task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || !validName(id) {
		return task.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	return t, nil
}

func (m *Memory) StoreTask(t *task.Task) error {
	m.mu.Lock()
	if t.ID == "" {
		m.counter++
		t.ID = fmt.Sprintf("mem-%d", m.counter)
	}
	if !validName(t.ID) {
		m.mu.Unlock()
		return fmt.Errorf("%w: task id %q", task.ErrInvalid, t.ID)
	}
	if t.Created.IsZero() {
		t.Created = time.Unix(int64(len(m.tasks)), 0)
	}
	m.tasks[t.ID] = *t
	m.mu.Unlock()
	m.notify(EventTasksChanged)
	return nil
}

func (m *Memory) DeleteTask(id string) error {
	m.mu.Lock()
	if _, ok := m.tasks[id]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	delete(m.tasks, id)
	m.mu.Unlock()
	m.notify(EventTasksChanged)
	return nil
}

func (m *Memory) Stamps(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.stamps))
	for d := range m.stamps {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (m *Memory) Stamp(date string) error {
	m.mu.Lock()
	m.stamps[date] = struct{}{}
	m.mu.Unlock()
	m.notify(EventStampsChanged)
	return nil
}

func (m *Memory) Unstamp(date string) error {
	m.mu.Lock()
	delete(m.stamps, date)
	m.mu.Unlock()
	m.notify(EventStampsChanged)
	return nil
}

func (m *Memory) Goals(_ context.Context) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.goals))
	for k, v := range m.goals {
		out[k] = v
	}
	return out
}

func (m *Memory) Goal(month string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.goals[month]
	if !ok {
		return "", fmt.Errorf("%w: goal %s", ErrNotFound, month)
	}
	return g, nil
}

func (m *Memory) SetGoal(month, text string) error {
	m.mu.Lock()
	if strings.TrimSpace(text) == "" {
		delete(m.goals, month)
	} else {
		m.goals[month] = text
	}
	m.mu.Unlock()
	m.notify(EventGoalsChanged)
	return nil
}

// Watch delivers an event after every mutation until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notify(typ EventType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- Event{Type: typ}:
		default:
		}
	}
}
