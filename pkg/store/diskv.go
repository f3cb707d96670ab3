// Package store persists tasks, stamps and monthly goals on disk.
package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/planner/pkg/task"
)

// ErrNotFound is returned when a task or goal does not exist.
var ErrNotFound = errors.New("store: not found")

const (
	bucketTasks  = "tasks"
	bucketStamps = "stamps"
	bucketGoals  = "goals"
)

// Persistence defines the persistence contract for planner data.
type Persistence interface {
	ListTasks(ctx context.Context) []task.Task
	Task(id string) (task.Task, error)
	StoreTask(t *task.Task) error
	DeleteTask(id string) error

	Stamps(ctx context.Context) []string
	Stamp(date string) error
	Unstamp(date string) error

	Goals(ctx context.Context) map[string]string
	Goal(month string) (string, error)
	SetGoal(month, text string) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config. A nil
// config is loaded from the environment.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) ListTasks(ctx context.Context) []task.Task {
	all := make([]task.Task, 0)
	for key := range p.d.KeysPrefix(bucketTasks+"/", ctx.Done()) {
		t, err := p.readTask(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

func (p *persistence) Task(id string) (task.Task, error) {
	if !validName(id) {
		return task.Task{}, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	key := toKey(bucketTasks, id)
	if !p.d.Has(key) {
		return task.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	return p.readTask(key)
}

func (p *persistence) readTask(key string) (task.Task, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return task.Task{}, err
	}
	var t task.Task
	if err := json.Unmarshal(val, &t); err != nil {
		return task.Task{}, err
	}
	t.ID = keyToPathTransform(key).FileName
	return t, nil
}

// StoreTask writes t, assigning an ID and creation time to new tasks.
func (p *persistence) StoreTask(t *task.Task) error {
	if t.Created.IsZero() {
		t.Created = time.Now()
	}
	if t.ID == "" {
		b, _ := json.Marshal(t)
		id := md5.Sum(b)
		t.ID = fmt.Sprintf("%x", id[:8])
	}
	if !validName(t.ID) {
		return fmt.Errorf("%w: task id %q", task.ErrInvalid, t.ID)
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(bucketTasks, t.ID), data)
}

func (p *persistence) DeleteTask(id string) error {
	if !validName(id) {
		return fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	key := toKey(bucketTasks, id)
	if !p.d.Has(key) {
		return fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	return p.d.Erase(key)
}

func (p *persistence) Stamps(ctx context.Context) []string {
	var dates []string
	for key := range p.d.KeysPrefix(bucketStamps+"/", ctx.Done()) {
		dates = append(dates, keyToPathTransform(key).FileName)
	}
	sort.Strings(dates)
	return dates
}

func (p *persistence) Stamp(date string) error {
	if !validName(date) {
		return fmt.Errorf("%w: stamp %q", task.ErrInvalid, date)
	}
	return p.d.Write(toKey(bucketStamps, date), []byte(time.Now().UTC().Format(time.RFC3339)))
}

func (p *persistence) Unstamp(date string) error {
	if !validName(date) {
		return fmt.Errorf("%w: stamp %q", task.ErrInvalid, date)
	}
	key := toKey(bucketStamps, date)
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) Goals(ctx context.Context) map[string]string {
	goals := make(map[string]string)
	for key := range p.d.KeysPrefix(bucketGoals+"/", ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		goals[keyToPathTransform(key).FileName] = string(val)
	}
	return goals
}

func (p *persistence) Goal(month string) (string, error) {
	if !validName(month) {
		return "", fmt.Errorf("%w: goal %q", ErrNotFound, month)
	}
	key := toKey(bucketGoals, month)
	if !p.d.Has(key) {
		return "", fmt.Errorf("%w: goal %s", ErrNotFound, month)
	}
	val, err := p.d.Read(key)
	if err != nil {
		return "", err
	}
	return string(val), nil
}

// SetGoal stores text for month; empty text removes the goal.
func (p *persistence) SetGoal(month, text string) error {
	if !validName(month) {
		return fmt.Errorf("%w: goal %q", task.ErrInvalid, month)
	}
	key := toKey(bucketGoals, month)
	if strings.TrimSpace(text) == "" {
		if p.d.Has(key) {
			return p.d.Erase(key)
		}
		return nil
	}
	return p.d.WriteString(key, text)
}

func sortTasks(tasks []task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left, right := tasks[i], tasks[j]
		if left.SortKey() != right.SortKey() {
			return left.SortKey() < right.SortKey()
		}
		if !left.Created.Equal(right.Created) {
			return left.Created.Before(right.Created)
		}
		return left.ID < right.ID
	})
}

// keys are `bucket/name`; diskv stores them as <base>/<bucket>/<name>.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}

// validName reports whether name can be a single file inside a bucket. Task
// ids, date keys and month keys only ever use letters, digits and '-'.
func validName(name string) bool {
	if name == "" || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}

func toKey(bucket, name string) string {
	return bucket + "/" + name
}
