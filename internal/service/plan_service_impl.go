package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/db"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/progress"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
	"github.com/google/uuid"
)

// ErrEmptyRoadmap is returned when generation yields no days to persist.
var ErrEmptyRoadmap = errors.New("roadmap is empty")

type planService struct {
	goals     repository.GoalRepo
	tasks     repository.TaskRepo
	uow       db.UnitOfWork
	generator *roadmap.Generator
	clock     roadmap.Clock
	observer  UseCaseObserver
}

func NewPlanService(
	goals repository.GoalRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	generator *roadmap.Generator,
	clock roadmap.Clock,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		goals:     goals,
		tasks:     tasks,
		uow:       uow,
		generator: generator,
		clock:     clock,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Preview(ctx context.Context, req contract.CreatePlanRequest) (resp *contract.PreviewResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": req.Goal}
	defer func() { observe(ctx, s.observer, "preview-plan", startedAt, fields, err) }()

	level, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	key, matched := s.generator.Catalog().ClassifyKey(req.Goal)
	tasks := s.generator.GenerateFrom(s.today(), s.goalSpec(req.Goal, level, req.HoursPerDay, req.Deadline))
	fields["catalog_key"] = key
	fields["days"] = len(tasks)

	return &contract.PreviewResponse{
		Goal:       strings.TrimSpace(req.Goal),
		Level:      level,
		CatalogKey: key,
		Matched:    matched,
		DayBudget:  roadmap.DayBudget(s.today(), req.Deadline),
		Tasks:      tasks,
	}, nil
}

func (s *planService) Create(ctx context.Context, req contract.CreatePlanRequest) (detail *contract.PlanDetail, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": req.Goal}
	defer func() { observe(ctx, s.observer, "create-plan", startedAt, fields, err) }()

	level, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	key, _ := s.generator.Catalog().ClassifyKey(req.Goal)
	generated := s.generator.GenerateFrom(s.today(), s.goalSpec(req.Goal, level, req.HoursPerDay, req.Deadline))
	if len(generated) == 0 {
		return nil, emptyRoadmapError(req.Deadline)
	}

	goal := &domain.Goal{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Goal),
		Level:       level,
		HoursPerDay: req.HoursPerDay,
		StartDate:   calendarDay(now),
		Deadline:    calendarDay(req.Deadline),
		CatalogKey:  key,
		Status:      domain.GoalActive,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	tasks := toDomainTasks(goal.ID, generated, now.UTC())

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		prefix := domain.ShortIDPrefix(goal.Title)
		seq, err := repository.NewSQLiteShortIDSequenceRepo(tx).NextSeq(ctx, prefix)
		if err != nil {
			return err
		}
		goal.ShortID = domain.FormatShortID(prefix, seq)
		if err := goal.ValidateShortID(); err != nil {
			return err
		}
		if err := repository.NewSQLiteGoalRepo(tx).Create(ctx, goal); err != nil {
			return err
		}
		return repository.NewSQLiteTaskRepo(tx).CreateBatch(ctx, tasks)
	})
	if err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	fields["goal_id"] = goal.ShortID
	fields["catalog_key"] = key
	fields["days"] = len(tasks)
	return &contract.PlanDetail{Goal: goal, Tasks: tasks}, nil
}

func (s *planService) Get(ctx context.Context, ref string) (*contract.PlanDetail, error) {
	goal, err := resolveGoal(ctx, s.goals, ref)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("loading roadmap of %s: %w", goal.DisplayID(), err)
	}
	return &contract.PlanDetail{Goal: goal, Tasks: tasks}, nil
}

func (s *planService) List(ctx context.Context, includeArchived bool) ([]contract.PlanSummary, error) {
	goals, err := s.goals.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}
	summaries := make([]contract.PlanSummary, 0, len(goals))
	for _, g := range goals {
		tasks, err := s.tasks.ListByGoal(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("loading roadmap of %s: %w", g.DisplayID(), err)
		}
		a := progress.Summarize(g, tasks, s.clock.Now())
		summaries = append(summaries, contract.PlanSummary{
			Goal:           g,
			TotalTasks:     a.TotalTasks,
			CompletedTasks: a.CompletedTasks,
			CompletionPct:  a.CompletionPct,
		})
	}
	return summaries, nil
}

func (s *planService) Archive(ctx context.Context, ref string) (goal *domain.Goal, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": ref}
	defer func() { observe(ctx, s.observer, "archive-plan", startedAt, fields, err) }()

	goal, err = resolveGoal(ctx, s.goals, ref)
	if err != nil {
		return nil, err
	}
	if goal.IsArchived() {
		return goal, nil
	}
	if err := s.goals.Archive(ctx, goal.ID, s.clock.Now()); err != nil {
		return nil, err
	}
	return s.goals.GetByID(ctx, goal.ID)
}

func (s *planService) Delete(ctx context.Context, ref string) (goal *domain.Goal, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": ref}
	defer func() { observe(ctx, s.observer, "delete-plan", startedAt, fields, err) }()

	goal, err = resolveGoal(ctx, s.goals, ref)
	if err != nil {
		return nil, err
	}
	if err := s.goals.Delete(ctx, goal.ID); err != nil {
		return nil, err
	}
	return goal, nil
}

// Regenerate rebuilds the roadmap of an active goal for a new deadline,
// starting today. Topics that were already completed stay completed.
func (s *planService) Regenerate(ctx context.Context, ref string, deadline time.Time) (detail *contract.PlanDetail, err error) {
	startedAt := time.Now()
	fields := map[string]any{"goal": ref}
	defer func() { observe(ctx, s.observer, "regenerate-plan", startedAt, fields, err) }()

	goal, err := resolveGoal(ctx, s.goals, ref)
	if err != nil {
		return nil, err
	}
	if goal.IsArchived() {
		return nil, &contract.PlanError{
			Code:    contract.PlanErrArchived,
			Message: fmt.Sprintf("goal %s is archived", goal.DisplayID()),
			Err:     domain.ErrGoalArchived,
		}
	}

	req := contract.CreatePlanRequest{
		Goal:        goal.Title,
		Level:       string(goal.Level),
		HoursPerDay: goal.HoursPerDay,
		Deadline:    deadline,
	}
	if _, err := s.validate(req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	generated := s.generator.GenerateFrom(s.today(), s.goalSpec(goal.Title, goal.Level, goal.HoursPerDay, deadline))
	if len(generated) == 0 {
		return nil, emptyRoadmapError(deadline)
	}

	var tasks []*domain.Task
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		previous, err := txTasks.ListByGoal(ctx, goal.ID)
		if err != nil {
			return err
		}
		completedAt := make(map[string]*time.Time, len(previous))
		for _, t := range previous {
			if t.IsCompleted() && t.Topic != "" {
				completedAt[t.Topic] = t.CompletedAt
			}
		}

		tasks = toDomainTasks(goal.ID, generated, now.UTC())
		carried := 0
		for _, t := range tasks {
			if at, ok := completedAt[t.Topic]; ok && at != nil {
				t.MarkComplete(*at)
				t.UpdatedAt = now.UTC()
				carried++
			}
		}
		fields["carried_over"] = carried

		if err := txTasks.DeleteByGoal(ctx, goal.ID); err != nil {
			return err
		}
		if err := txTasks.CreateBatch(ctx, tasks); err != nil {
			return err
		}

		goal.StartDate = calendarDay(now)
		goal.Deadline = calendarDay(deadline)
		goal.UpdatedAt = now.UTC()
		return repository.NewSQLiteGoalRepo(tx).Update(ctx, goal)
	})
	if err != nil {
		return nil, fmt.Errorf("regenerating plan: %w", err)
	}

	fields["days"] = len(tasks)
	return &contract.PlanDetail{Goal: goal, Tasks: tasks}, nil
}

func (s *planService) validate(req contract.CreatePlanRequest) (domain.Level, error) {
	if err := req.Input().Validate(s.today()); err != nil {
		return "", &contract.PlanError{Code: contract.PlanErrInvalidInput, Message: err.Error(), Err: err}
	}
	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		return "", &contract.PlanError{Code: contract.PlanErrInvalidInput, Message: err.Error(), Err: err}
	}
	return level, nil
}

// today is the clock's calendar date in the UTC-midnight form deadlines are
// stored in, so day budgets count calendar days in the user's time zone.
func (s *planService) today() time.Time {
	return calendarDay(s.clock.Now())
}

func (s *planService) goalSpec(goal string, level domain.Level, hours float64, deadline time.Time) roadmap.GoalSpec {
	return roadmap.GoalSpec{
		Goal:        goal,
		Level:       roadmap.Level(level),
		HoursPerDay: hours,
		Deadline:    deadline,
	}
}

func emptyRoadmapError(deadline time.Time) error {
	return &contract.PlanError{
		Code:    contract.PlanErrEmptyRoadmap,
		Message: fmt.Sprintf("no days left before %s", deadline.Format(domain.DateLayout)),
		Err:     ErrEmptyRoadmap,
	}
}

func toDomainTasks(goalID string, generated []roadmap.Task, now time.Time) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(generated))
	for _, g := range generated {
		tasks = append(tasks, &domain.Task{
			ID:          uuid.New().String(),
			GoalID:      goalID,
			Day:         g.Day,
			Topic:       g.Topic,
			Category:    g.Category,
			Description: g.Description,
			Duration:    g.Duration,
			Resources:   g.Resources,
			Status:      domain.TaskPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return tasks
}
