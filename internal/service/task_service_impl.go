package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

type taskService struct {
	goals    repository.GoalRepo
	tasks    repository.TaskRepo
	clock    roadmap.Clock
	observer UseCaseObserver
}

func NewTaskService(goals repository.GoalRepo, tasks repository.TaskRepo, clock roadmap.Clock, observers ...UseCaseObserver) TaskService {
	return &taskService{goals: goals, tasks: tasks, clock: clock, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Complete(ctx context.Context, ref string, day int) (task *domain.Task, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": ref, "day": day}
	defer func() { observe(ctx, s.observer, "complete-task", startedAt, fields, err) }()

	return s.transition(ctx, ref, day, func(t *domain.Task, now time.Time) { t.MarkComplete(now) })
}

func (s *taskService) Reopen(ctx context.Context, ref string, day int) (task *domain.Task, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": ref, "day": day}
	defer func() { observe(ctx, s.observer, "reopen-task", startedAt, fields, err) }()

	return s.transition(ctx, ref, day, func(t *domain.Task, now time.Time) { t.MarkPending(now) })
}

func (s *taskService) List(ctx context.Context, ref string) ([]*domain.Task, error) {
	goal, err := resolveGoal(ctx, s.goals, ref)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListByGoal(ctx, goal.ID)
}

// transition applies apply to one day of an active goal and persists the
// result when the status actually changed.
func (s *taskService) transition(ctx context.Context, ref string, day int, apply func(*domain.Task, time.Time)) (*domain.Task, error) {
	goal, err := resolveGoal(ctx, s.goals, ref)
	if err != nil {
		return nil, err
	}
	if goal.IsArchived() {
		return nil, fmt.Errorf("goal %s: %w", goal.DisplayID(), domain.ErrGoalArchived)
	}

	task, err := s.tasks.GetByGoalDay(ctx, goal.ID, day)
	if err != nil {
		return nil, fmt.Errorf("day %d of %s: %w", day, goal.DisplayID(), err)
	}

	before := task.Status
	apply(task, s.clock.Now().UTC())
	if task.Status == before {
		return task, nil
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
