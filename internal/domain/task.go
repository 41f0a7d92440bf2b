package domain

import (
	"errors"
	"time"
)

// ErrGoalArchived is returned when a task of an archived goal is modified.
var ErrGoalArchived = errors.New("goal is archived")

// Task is one persisted day of a roadmap.
type Task struct {
	ID          string
	GoalID      string
	Day         int
	Topic       string
	Category    string
	Description string
	Duration    string
	Resources   []string
	Status      TaskStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

// MarkComplete transitions the task to completed. Completing an already
// completed task keeps the original CompletedAt.
func (t *Task) MarkComplete(now time.Time) {
	if t.Status == TaskCompleted {
		return
	}
	t.Status = TaskCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// MarkPending reopens a task and clears its completion time.
func (t *Task) MarkPending(now time.Time) {
	if t.Status == TaskPending {
		return
	}
	t.Status = TaskPending
	t.CompletedAt = nil
	t.UpdatedAt = now
}

// ExpectedDate is the calendar date a task is scheduled for, counting day 1
// as the goal's start date.
func (t *Task) ExpectedDate(start time.Time) time.Time {
	return DateOnly(start).AddDate(0, 0, t.Day-1)
}
