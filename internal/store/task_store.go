// Package store holds the session-scoped client state: the task collection
// with its stats snapshot, and the authentication state. Stores own their
// mutable fields behind a mutex; callers only ever see copies.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"task-manager-cli/internal/models"
)

// TaskAPI is the slice of the remote client the task store needs. It is an
// interface so tests can substitute a fake.
type TaskAPI interface {
	ListTasks(ctx context.Context, statusFilter string) (*models.TaskListResponse, error)
	GetStats(ctx context.Context) (*models.TaskStats, error)
	CreateTask(ctx context.Context, title string) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, req models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// Fallback error messages used when the server response carries no detail.
const (
	msgFetchFailed  = "Failed to fetch tasks"
	msgCreateFailed = "Failed to create task"
	msgUpdateFailed = "Failed to update task"
	msgDeleteFailed = "Failed to delete task"
	msgBusy         = "Another request for this task is still running"
)

// TaskStore caches the current user's tasks and stats, reconciling with the
// remote API after every mutation. Failures never surface as errors: each
// mutating call reports a boolean and stores a message for display. A failed
// call leaves the collection exactly as it was.
type TaskStore struct {
	api TaskAPI
	log *zap.Logger

	mu             sync.Mutex
	tasks          []models.Task
	stats          *models.TaskStats
	loading        bool
	errMsg         string
	createInFlight bool
	taskInFlight   map[int]bool
}

func NewTaskStore(api TaskAPI, log *zap.Logger) *TaskStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &TaskStore{
		api:          api,
		log:          log,
		taskInFlight: make(map[int]bool),
	}
}

// FetchTasks replaces the whole local collection with the server's list.
// On failure the previous collection stays untouched and the error message
// is recorded.
func (s *TaskStore) FetchTasks(ctx context.Context, statusFilter string) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	resp, err := s.api.ListTasks(ctx, statusFilter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = errMessage(err, msgFetchFailed)
		return
	}
	s.tasks = resp.Tasks
}

// FetchStats refreshes the stats snapshot. A failed fetch keeps the previous
// snapshot; stale stats beat no stats.
func (s *TaskStore) FetchStats(ctx context.Context) {
	stats, err := s.api.GetStats(ctx)
	if err != nil {
		s.log.Warn("failed to fetch stats", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}

// CreateTask sends the title to the server and prepends the task the server
// returns. One attempt only; while a create is outstanding, further calls
// are rejected.
func (s *TaskStore) CreateTask(ctx context.Context, title string) bool {
	s.mu.Lock()
	if s.createInFlight {
		s.errMsg = msgBusy
		s.mu.Unlock()
		return false
	}
	s.createInFlight = true
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	task, err := s.api.CreateTask(ctx, title)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.createInFlight = false
	s.loading = false
	if err != nil {
		s.errMsg = errMessage(err, msgCreateFailed)
		return false
	}
	s.tasks = append([]models.Task{*task}, s.tasks...)
	return true
}

// UpdateTask sends a partial update and swaps in the server's representation
// of the task. Only one update or delete per task id may be outstanding.
func (s *TaskStore) UpdateTask(ctx context.Context, id int, title *string, isCompleted *bool) bool {
	if !s.acquireTask(id) {
		return false
	}
	defer s.releaseTask(id)

	task, err := s.api.UpdateTask(ctx, id, models.UpdateTaskRequest{
		Title:       title,
		IsCompleted: isCompleted,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = errMessage(err, msgUpdateFailed)
		return false
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = *task
			break
		}
	}
	return true
}

// DeleteTask removes the task locally once the server confirms. No
// optimistic removal: a failed delete leaves the record in place.
func (s *TaskStore) DeleteTask(ctx context.Context, id int) bool {
	if !s.acquireTask(id) {
		return false
	}
	defer s.releaseTask(id)

	err := s.api.DeleteTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = errMessage(err, msgDeleteFailed)
		return false
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return true
}

func (s *TaskStore) acquireTask(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taskInFlight[id] {
		s.errMsg = msgBusy
		return false
	}
	s.taskInFlight[id] = true
	s.errMsg = ""
	return true
}

func (s *TaskStore) releaseTask(id int) {
	s.mu.Lock()
	delete(s.taskInFlight, id)
	s.mu.Unlock()
}

// Tasks returns a copy of the current collection in insertion order.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats returns the last fetched snapshot, or ok=false before any
// successful fetch.
func (s *TaskStore) Stats() (models.TaskStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return models.TaskStats{}, false
	}
	return *s.stats, true
}

// LocalStats derives stats from the in-memory collection without a network
// round trip, for use right after a mutation.
func (s *TaskStore) LocalStats() models.TaskStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var completed int
	for _, t := range s.tasks {
		if t.IsCompleted {
			completed++
		}
	}
	total := len(s.tasks)
	stats := models.TaskStats{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
	}
	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
	}
	return stats
}

func (s *TaskStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message of the most recent failure, or "".
func (s *TaskStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *TaskStore) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// SetTasks overwrites the local collection, e.g. when restoring a cached
// snapshot while offline.
func (s *TaskStore) SetTasks(tasks []models.Task) {
	s.mu.Lock()
	s.tasks = append([]models.Task(nil), tasks...)
	s.mu.Unlock()
}
