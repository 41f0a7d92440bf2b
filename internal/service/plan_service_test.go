package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/db"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
	"github.com/alexanderramin/skillpilot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_Create_PersistsGoalAndRoadmap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	detail := env.createPlan(t, "Become a Frontend Developer", "beginner", 2, 15)

	goal := detail.Goal
	assert.Equal(t, "FD01", goal.ShortID)
	assert.Equal(t, "Become a Frontend Developer", goal.Title)
	assert.Equal(t, domain.LevelBeginner, goal.Level)
	assert.Equal(t, "frontend developer", goal.CatalogKey)
	assert.Equal(t, testNow, goal.StartDate)
	assert.Equal(t, daysAfter(15), goal.Deadline)
	require.Len(t, detail.Tasks, 15)

	stored, err := env.tasks.ListByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, stored, 15)
	assert.Equal(t, "HTML Basics & Semantic Tags & HTML Forms & Validation", stored[0].Topic)
	assert.Equal(t, "2 hours", stored[0].Duration)
	assert.NotEmpty(t, stored[0].Resources)
	for i, task := range stored {
		assert.Equal(t, i+1, task.Day)
		assert.Equal(t, domain.TaskPending, task.Status)
		assert.NotEmpty(t, task.ID)
	}

	ev := env.observer.last()
	assert.Equal(t, "create-plan", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 15, ev.Fields["days"])
}

func TestPlanService_Create_CountsCalendarDaysInLocalZone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	// 05:00 on Oct 20 in UTC+10 is still Oct 19 in UTC.
	env.clock.now = time.Date(2026, 10, 20, 5, 0, 0, 0, time.FixedZone("AEST", 10*3600))
	deadline := time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC)

	preview, err := env.plans.Preview(ctx, contract.NewCreatePlanRequest("Become a Frontend Developer", deadline))
	require.NoError(t, err)
	assert.Equal(t, 15, preview.DayBudget)
	assert.Len(t, preview.Tasks, 15)

	detail, err := env.plans.Create(ctx, contract.NewCreatePlanRequest("Become a Frontend Developer", deadline))
	require.NoError(t, err)
	assert.Len(t, detail.Tasks, 15)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), detail.Goal.StartDate)

	_, err = env.plans.Create(ctx, contract.NewCreatePlanRequest("Become a Frontend Developer", time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
	require.Error(t, err, "a deadline on the local today leaves no days")
}

func TestPlanService_Create_ShortIDsIncrementPerPrefix(t *testing.T) {
	env := newTestEnv(t)

	first := env.createPlan(t, "Frontend Developer", "beginner", 2, 10)
	second := env.createPlan(t, "Frontend Developer", "advanced", 2, 10)
	other := env.createPlan(t, "Data Science", "beginner", 2, 10)

	assert.Equal(t, "FD01", first.Goal.ShortID)
	assert.Equal(t, "FD02", second.Goal.ShortID)
	assert.Equal(t, "DS01", other.Goal.ShortID)
}

func TestPlanService_Create_UnmatchedGoalUsesFallback(t *testing.T) {
	env := newTestEnv(t)

	detail := env.createPlan(t, "Learn Rust", "intermediate", 1.5, 30)

	assert.Equal(t, roadmap.DefaultKey, detail.Goal.CatalogKey)
	assert.Equal(t, "RUST01", detail.Goal.ShortID)
	require.Len(t, detail.Tasks, 30)
	assert.Equal(t, "1.5 hours", detail.Tasks[0].Duration)
	assert.Equal(t, "Practice & Review Day 1", detail.Tasks[21].Topic)
}

func TestPlanService_Create_InvalidInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.plans.Create(ctx, contract.CreatePlanRequest{
		Goal:        "",
		Level:       "expert",
		HoursPerDay: 20,
		Deadline:    testNow,
	})
	require.Error(t, err)

	var planErr *contract.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, contract.PlanErrInvalidInput, planErr.Code)
	assert.Contains(t, err.Error(), "goal is required")
	assert.Contains(t, err.Error(), "hours per day")

	goals, err := env.goals.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, goals)
	assert.False(t, env.observer.last().Success)
}

func TestPlanService_Create_RollsBackOnTaskInsertFailure(t *testing.T) {
	uow := &testutil.FailingWriteUoW{Table: "tasks", Err: fmt.Errorf("injected task insert failure")}
	env := newTestEnvWithUoW(t, func(database *sql.DB) db.UnitOfWork {
		uow.DB = database
		return uow
	})
	ctx := context.Background()

	_, err := env.plans.Create(ctx, contract.NewCreatePlanRequest("DevOps", daysAfter(7)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected task insert failure")
	assert.Equal(t, 1, uow.Failures())

	goals, err := env.goals.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, goals, "goal insert rolled back")
}

func TestPlanService_Preview_DoesNotPersist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.plans.Preview(ctx, contract.CreatePlanRequest{
		Goal:        "I want to learn data science",
		Level:       "Advanced",
		HoursPerDay: 3,
		Deadline:    daysAfter(22),
	})
	require.NoError(t, err)
	assert.Equal(t, "data science", resp.CatalogKey)
	assert.True(t, resp.Matched)
	assert.Equal(t, domain.LevelAdvanced, resp.Level)
	assert.Equal(t, 22, resp.DayBudget)
	require.Len(t, resp.Tasks, 22)
	assert.True(t, strings.HasPrefix(resp.Tasks[0].Description, "Master "), resp.Tasks[0].Description)

	goals, err := env.goals.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestPlanService_Get_ByShortIDAndUUID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.createPlan(t, "Mobile developer", "beginner", 2, 5)

	byShort, err := env.plans.Get(ctx, "md01")
	require.NoError(t, err)
	assert.Equal(t, created.Goal.ID, byShort.Goal.ID)
	assert.Len(t, byShort.Tasks, 5)

	byID, err := env.plans.Get(ctx, created.Goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "MD01", byID.Goal.ShortID)

	_, err = env.plans.Get(ctx, "ZZ99")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_List_ReportsCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "Backend developer", "beginner", 2, 4)
	_, err := env.taskSvc.Complete(ctx, plan.Goal.ShortID, 1)
	require.NoError(t, err)

	summaries, err := env.plans.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 4, summaries[0].TotalTasks)
	assert.Equal(t, 1, summaries[0].CompletedTasks)
	assert.Equal(t, 25.0, summaries[0].CompletionPct)
}

func TestPlanService_Archive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "DevOps", "beginner", 2, 5)

	archived, err := env.plans.Archive(ctx, plan.Goal.ShortID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived())
	require.NotNil(t, archived.ArchivedAt)

	active, err := env.plans.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := env.plans.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	again, err := env.plans.Archive(ctx, plan.Goal.ShortID)
	require.NoError(t, err, "archiving twice is a no-op")
	assert.Equal(t, archived.ArchivedAt.Unix(), again.ArchivedAt.Unix())
}

func TestPlanService_Delete_RemovesTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "DevOps", "beginner", 2, 5)

	deleted, err := env.plans.Delete(ctx, plan.Goal.ShortID)
	require.NoError(t, err)
	assert.Equal(t, plan.Goal.ID, deleted.ID)

	tasks, err := env.tasks.ListByGoal(ctx, plan.Goal.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = env.plans.Delete(ctx, plan.Goal.ShortID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_Regenerate_KeepsCompletedTopics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "Frontend developer", "beginner", 2, 30)
	require.Len(t, plan.Tasks, 30)
	_, err := env.taskSvc.Complete(ctx, plan.Goal.ShortID, 1)
	require.NoError(t, err)

	env.clock.Advance(48 * time.Hour)
	detail, err := env.plans.Regenerate(ctx, plan.Goal.ShortID, daysAfter(40))
	require.NoError(t, err)

	assert.Equal(t, daysAfter(2), detail.Goal.StartDate)
	assert.Equal(t, daysAfter(40), detail.Goal.Deadline)
	require.Len(t, detail.Tasks, 38)

	stored, err := env.tasks.ListByGoal(ctx, plan.Goal.ID)
	require.NoError(t, err)
	require.Len(t, stored, 38)
	assert.Equal(t, "HTML Basics & Semantic Tags", stored[0].Topic)
	assert.True(t, stored[0].IsCompleted(), "completed topic carried over")
	assert.False(t, stored[1].IsCompleted())
	assert.Equal(t, 1, env.observer.last().Fields["carried_over"])
}

func TestPlanService_Regenerate_RollsBackOnGoalUpdateFailure(t *testing.T) {
	uow := &testutil.FailingWriteUoW{Err: fmt.Errorf("injected goal update failure")}
	env := newTestEnvWithUoW(t, func(database *sql.DB) db.UnitOfWork {
		uow.DB = database
		return uow
	})
	ctx := context.Background()
	plan := env.createPlan(t, "DevOps", "beginner", 2, 5)

	uow.Table = "goals"
	_, err := env.plans.Regenerate(ctx, plan.Goal.ShortID, daysAfter(9))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected goal update failure")

	tasks, err := env.tasks.ListByGoal(ctx, plan.Goal.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 5, "task replacement rolled back")
}

func TestPlanService_Regenerate_RejectsArchivedGoal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "DevOps", "beginner", 2, 5)
	_, err := env.plans.Archive(ctx, plan.Goal.ShortID)
	require.NoError(t, err)

	_, err = env.plans.Regenerate(ctx, plan.Goal.ShortID, daysAfter(10))
	require.ErrorIs(t, err, domain.ErrGoalArchived)
}

func TestPlanService_Regenerate_RejectsPastDeadline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "DevOps", "beginner", 2, 5)

	_, err := env.plans.Regenerate(ctx, plan.Goal.ShortID, testNow)
	var planErr *contract.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, contract.PlanErrInvalidInput, planErr.Code)

	tasks, err := env.tasks.ListByGoal(ctx, plan.Goal.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 5, "roadmap untouched")
}

func TestEmptyRoadmapError_WrapsSentinel(t *testing.T) {
	err := emptyRoadmapError(testNow)
	assert.ErrorIs(t, err, ErrEmptyRoadmap)
	assert.Contains(t, err.Error(), "EMPTY_ROADMAP")
	assert.Contains(t, err.Error(), "2025-06-15")
}
