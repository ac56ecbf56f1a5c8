// Package reminders schedules local notifications for tasks with due dates
// and a recurring daily summary.
package reminders

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"task-manager-cli/internal/models"
)

// Notifier delivers a reminder to the user. The CLI prints to the terminal;
// tests substitute a recorder.
type Notifier interface {
	Notify(title, body string)
}

// StatsFunc supplies the stats snapshot for the daily summary.
type StatsFunc func() (models.TaskStats, bool)

// Scheduler fires a reminder ahead of each task's due date and an optional
// daily summary. One reminder per task id; rescheduling replaces the
// previous one.
type Scheduler struct {
	notifier Notifier
	lead     time.Duration
	log      *zap.Logger

	mu     sync.Mutex
	timers map[int]*time.Timer
	cron   *cron.Cron
}

func NewScheduler(notifier Notifier, lead time.Duration, log *zap.Logger) *Scheduler {
	if lead <= 0 {
		lead = time.Hour
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		notifier: notifier,
		lead:     lead,
		log:      log,
		timers:   make(map[int]*time.Timer),
	}
}

// ScheduleTask arms a reminder for the task, lead time before its due date.
// Completed tasks, tasks without a due date, past due dates and reminder
// instants already behind us are all skipped. Returns true when a reminder
// was armed.
func (s *Scheduler) ScheduleTask(task models.Task) bool {
	if task.IsCompleted || task.DueDate == "" {
		return false
	}
	due, ok := models.ParseTime(task.DueDate)
	if !ok {
		s.log.Debug("unparseable due date", zap.Int("task_id", task.ID), zap.String("due_date", task.DueDate))
		return false
	}
	now := time.Now()
	if !due.After(now) {
		return false
	}
	at := due.Add(-s.lead)
	if !at.After(now) {
		return false
	}

	s.CancelTask(task.ID)

	title := task.Title
	s.mu.Lock()
	var tm *time.Timer
	tm = time.AfterFunc(time.Until(at), func() {
		s.notifier.Notify("Task Reminder", fmt.Sprintf("%q is due soon!", title))
		s.mu.Lock()
		// Only remove our own entry; the task may have been rescheduled.
		if s.timers[task.ID] == tm {
			delete(s.timers, task.ID)
		}
		s.mu.Unlock()
	})
	s.timers[task.ID] = tm
	s.mu.Unlock()

	s.log.Debug("reminder scheduled",
		zap.Int("task_id", task.ID),
		zap.Time("at", at),
	)
	return true
}

// ScheduleAll arms reminders for every eligible task and returns how many
// were armed.
func (s *Scheduler) ScheduleAll(tasks []models.Task) int {
	var n int
	for _, t := range tasks {
		if s.ScheduleTask(t) {
			n++
		}
	}
	return n
}

// CancelTask disarms the reminder for a task, e.g. after completion or
// deletion.
func (s *Scheduler) CancelTask(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// StartDailySummary begins firing a summary on the given cron spec
// (standard five-field format).
func (s *Scheduler) StartDailySummary(spec string, stats StatsFunc) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		snapshot, ok := stats()
		if !ok {
			s.notifier.Notify("Daily Summary", "No task stats available yet")
			return
		}
		s.notifier.Notify("Daily Summary", fmt.Sprintf(
			"%d of %d tasks completed (%.0f%%), %d pending",
			snapshot.CompletedTasks,
			snapshot.TotalTasks,
			snapshot.CompletionRate,
			snapshot.PendingTasks,
		))
	})
	if err != nil {
		return fmt.Errorf("invalid daily summary spec %q: %w", spec, err)
	}
	c.Start()

	s.mu.Lock()
	if s.cron != nil {
		s.cron.Stop()
	}
	s.cron = c
	s.mu.Unlock()
	return nil
}

// Stop disarms everything.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}

// Pending reports how many task reminders are currently armed.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
