package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/db"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
	"github.com/alexanderramin/skillpilot/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func daysAfter(n int) time.Time {
	return testNow.AddDate(0, 0, n)
}

// testClock is a settable clock shared by the generator and the services.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type testEnv struct {
	db       *sql.DB
	goals    repository.GoalRepo
	tasks    repository.TaskRepo
	clock    *testClock
	observer *recordingObserver
	plans    PlanService
	taskSvc  TaskService
	progress ProgressService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithUoW(t, nil)
}

// newTestEnvWithUoW builds the services on a fresh database. A nil uow uses
// the real SQLite unit of work.
func newTestEnvWithUoW(t *testing.T, uowFor func(*sql.DB) db.UnitOfWork) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	if uowFor != nil {
		uow = uowFor(database)
	}
	env := &testEnv{
		db:       database,
		goals:    repository.NewSQLiteGoalRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		clock:    &testClock{now: testNow},
		observer: &recordingObserver{},
	}
	gen := roadmap.NewGenerator(roadmap.WithClock(env.clock))
	env.plans = NewPlanService(env.goals, env.tasks, uow, gen, env.clock, env.observer)
	env.taskSvc = NewTaskService(env.goals, env.tasks, env.clock, env.observer)
	env.progress = NewProgressService(env.goals, env.tasks, env.clock, env.observer)
	return env
}

func (e *testEnv) createPlan(t *testing.T, goal, level string, hours float64, days int) *contract.PlanDetail {
	t.Helper()
	detail, err := e.plans.Create(context.Background(), contract.CreatePlanRequest{
		Goal:        goal,
		Level:       level,
		HoursPerDay: hours,
		Deadline:    daysAfter(days),
	})
	require.NoError(t, err)
	return detail
}
