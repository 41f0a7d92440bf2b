package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/progress"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

type progressService struct {
	goals    repository.GoalRepo
	tasks    repository.TaskRepo
	clock    roadmap.Clock
	observer UseCaseObserver
}

func NewProgressService(goals repository.GoalRepo, tasks repository.TaskRepo, clock roadmap.Clock, observers ...UseCaseObserver) ProgressService {
	return &progressService{goals: goals, tasks: tasks, clock: clock, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) Analytics(ctx context.Context, ref string) (resp *contract.AnalyticsResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": ref}
	defer func() { observe(ctx, s.observer, "analytics", startedAt, fields, err) }()

	goal, tasks, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	a := progress.Summarize(goal, tasks, s.clock.Now())
	fields["completion_pct"] = a.CompletionPct
	fields["pace"] = string(a.Pace)
	return &contract.AnalyticsResponse{Goal: goal, Analytics: a}, nil
}

func (s *progressService) CatchUp(ctx context.Context, ref string) (resp *contract.CatchUpResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": ref}
	defer func() { observe(ctx, s.observer, "catch-up", startedAt, fields, err) }()

	goal, tasks, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	missed := progress.MissedDays(goal.StartDate, s.clock.Now(), tasks)
	fields["missed"] = len(missed)
	return &contract.CatchUpResponse{Goal: goal, Missed: missed, CatchUp: progress.CatchUpPlan(missed)}, nil
}

func (s *progressService) Reminder(ctx context.Context, ref string) (*contract.ReminderResponse, error) {
	goal, tasks, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	today := s.clock.Now()
	resp := &contract.ReminderResponse{
		Goal:      goal,
		DayNumber: progress.DayNumber(goal.StartDate, today),
	}
	if goal.IsArchived() {
		return resp, nil
	}
	if task := progress.TodayTask(goal.StartDate, today, tasks); task != nil {
		resp.ShouldRemind = true
		resp.Task = task
		resp.TimeRequired = roadmap.FormatDuration(goal.HoursPerDay)
	}
	return resp, nil
}

func (s *progressService) Activity(ctx context.Context, days int) (*contract.ActivityResponse, error) {
	if days <= 0 {
		days = progress.WeekWindowDays
	}
	since := calendarDay(s.clock.Now()).AddDate(0, 0, -days)
	tasks, err := s.tasks.ListCompletedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("loading recent activity: %w", err)
	}
	return &contract.ActivityResponse{Since: since, Completed: tasks}, nil
}

func (s *progressService) load(ctx context.Context, ref string) (*domain.Goal, []*domain.Task, error) {
	goal, err := resolveGoal(ctx, s.goals, ref)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.tasks.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading roadmap of %s: %w", goal.DisplayID(), err)
	}
	return goal, tasks, nil
}
