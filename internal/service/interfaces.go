package service

import (
	"context"
	"time"

	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/domain"
)

// Goal references passed to services may be a goal UUID or its short ID.

type PlanService interface {
	Preview(ctx context.Context, req contract.CreatePlanRequest) (*contract.PreviewResponse, error)
	Create(ctx context.Context, req contract.CreatePlanRequest) (*contract.PlanDetail, error)
	Get(ctx context.Context, ref string) (*contract.PlanDetail, error)
	List(ctx context.Context, includeArchived bool) ([]contract.PlanSummary, error)
	Archive(ctx context.Context, ref string) (*domain.Goal, error)
	Delete(ctx context.Context, ref string) (*domain.Goal, error)
	Regenerate(ctx context.Context, ref string, deadline time.Time) (*contract.PlanDetail, error)
}

type TaskService interface {
	Complete(ctx context.Context, ref string, day int) (*domain.Task, error)
	Reopen(ctx context.Context, ref string, day int) (*domain.Task, error)
	List(ctx context.Context, ref string) ([]*domain.Task, error)
}

type ProgressService interface {
	Analytics(ctx context.Context, ref string) (*contract.AnalyticsResponse, error)
	CatchUp(ctx context.Context, ref string) (*contract.CatchUpResponse, error)
	Reminder(ctx context.Context, ref string) (*contract.ReminderResponse, error)
	// Activity lists tasks of active goals completed within the last days days.
	Activity(ctx context.Context, days int) (*contract.ActivityResponse, error)
}
