package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Goal options
type GoalOption func(*domain.Goal)

func WithLevel(l domain.Level) GoalOption {
	return func(g *domain.Goal) {
		g.Level = l
	}
}

func WithHoursPerDay(h float64) GoalOption {
	return func(g *domain.Goal) {
		g.HoursPerDay = h
	}
}

func WithStartDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.StartDate = d
	}
}

func WithDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = d
	}
}

func WithShortID(id string) GoalOption {
	return func(g *domain.Goal) {
		g.ShortID = id
	}
}

func WithCatalogKey(key string) GoalOption {
	return func(g *domain.Goal) {
		g.CatalogKey = key
	}
}

func WithArchived(at time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Status = domain.GoalArchived
		g.ArchivedAt = &at
	}
}

func defaultShortID(title string) string {
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", domain.ShortIDPrefix(title), n)
}

func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC().Truncate(time.Second)
	today := domain.DateOnly(now)
	g := &domain.Goal{
		ID:          uuid.New().String(),
		ShortID:     defaultShortID(title),
		Title:       title,
		Level:       domain.LevelBeginner,
		HoursPerDay: 2,
		StartDate:   today,
		Deadline:    today.AddDate(0, 0, 14),
		Status:      domain.GoalActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Task options
type TaskOption func(*domain.Task)

func WithTopic(topic string) TaskOption {
	return func(t *domain.Task) {
		t.Topic = topic
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithResources(r ...string) TaskOption {
	return func(t *domain.Task) {
		t.Resources = r
	}
}

func WithCompletedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskCompleted
		t.CompletedAt = &at
	}
}

func NewTestTask(goalID string, day int, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:          uuid.New().String(),
		GoalID:      goalID,
		Day:         day,
		Topic:       fmt.Sprintf("Topic %d", day),
		Category:    "Fundamentals",
		Description: "Learn the basics",
		Duration:    "2 hours",
		Resources:   []string{"📚 Official Documentation"},
		Status:      domain.TaskPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestTasks builds tasks for days 1..n of a goal.
func NewTestTasks(goalID string, n int) []*domain.Task {
	tasks := make([]*domain.Task, 0, n)
	for day := 1; day <= n; day++ {
		tasks = append(tasks, NewTestTask(goalID, day))
	}
	return tasks
}
