package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CompleteAndReopen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "Data science", "beginner", 2, 10)

	env.clock.Advance(3 * time.Hour)
	task, err := env.taskSvc.Complete(ctx, plan.Goal.ShortID, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, testNow.Add(3*time.Hour), *task.CompletedAt)

	stored, err := env.tasks.GetByGoalDay(ctx, plan.Goal.ID, 2)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted())

	ev := env.observer.last()
	assert.Equal(t, "complete-task", ev.Name)
	assert.Equal(t, 2, ev.Fields["day"])

	reopened, err := env.taskSvc.Reopen(ctx, plan.Goal.ShortID, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)

	stored, err = env.tasks.GetByGoalDay(ctx, plan.Goal.ID, 2)
	require.NoError(t, err)
	assert.False(t, stored.IsCompleted())
}

func TestTaskService_CompleteTwiceKeepsFirstTimestamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "Data science", "beginner", 2, 10)

	_, err := env.taskSvc.Complete(ctx, plan.Goal.ShortID, 1)
	require.NoError(t, err)
	env.clock.Advance(24 * time.Hour)
	task, err := env.taskSvc.Complete(ctx, plan.Goal.ShortID, 1)
	require.NoError(t, err)
	assert.Equal(t, testNow, *task.CompletedAt)
}

func TestTaskService_UnknownDay(t *testing.T) {
	env := newTestEnv(t)
	plan := env.createPlan(t, "Data science", "beginner", 2, 10)

	_, err := env.taskSvc.Complete(context.Background(), plan.Goal.ShortID, 11)
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "day 11 of DS01")
	assert.False(t, env.observer.last().Success)
}

func TestTaskService_ArchivedGoalIsReadOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t, "Data science", "beginner", 2, 10)
	_, err := env.plans.Archive(ctx, plan.Goal.ShortID)
	require.NoError(t, err)

	_, err = env.taskSvc.Complete(ctx, plan.Goal.ShortID, 1)
	require.ErrorIs(t, err, domain.ErrGoalArchived)
	_, err = env.taskSvc.Reopen(ctx, plan.Goal.ShortID, 1)
	require.ErrorIs(t, err, domain.ErrGoalArchived)

	tasks, err := env.taskSvc.List(ctx, plan.Goal.ShortID)
	require.NoError(t, err, "listing stays available")
	assert.Len(t, tasks, 10)
}
