package contract

import (
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

type CreatePlanRequest struct {
	Goal        string
	Level       string
	HoursPerDay float64
	Deadline    time.Time
}

// NewCreatePlanRequest returns a request for a beginner plan at the default
// daily budget.
func NewCreatePlanRequest(goal string, deadline time.Time) CreatePlanRequest {
	return CreatePlanRequest{
		Goal:        goal,
		Level:       string(domain.LevelBeginner),
		HoursPerDay: roadmap.DefaultHoursPerDay,
		Deadline:    deadline,
	}
}

// Input converts the request into the domain validation input.
func (r CreatePlanRequest) Input() domain.GoalInput {
	return domain.GoalInput{
		Goal:        r.Goal,
		Level:       r.Level,
		HoursPerDay: r.HoursPerDay,
		Deadline:    r.Deadline,
	}
}

// PreviewResponse is a generated roadmap that has not been persisted.
type PreviewResponse struct {
	Goal       string
	Level      domain.Level
	CatalogKey string
	Matched    bool
	DayBudget  int
	Tasks      []roadmap.Task
}

// PlanSummary is one row of the goal list.
type PlanSummary struct {
	Goal           *domain.Goal
	TotalTasks     int
	CompletedTasks int
	CompletionPct  float64
}

// PlanDetail is a goal with its full roadmap.
type PlanDetail struct {
	Goal  *domain.Goal
	Tasks []*domain.Task
}

type PlanErrorCode string

const (
	PlanErrInvalidInput PlanErrorCode = "INVALID_INPUT"
	PlanErrEmptyRoadmap PlanErrorCode = "EMPTY_ROADMAP"
	PlanErrArchived     PlanErrorCode = "GOAL_ARCHIVED"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}
