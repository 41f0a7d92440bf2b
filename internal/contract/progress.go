package contract

import (
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/progress"
)

type AnalyticsResponse struct {
	Goal *domain.Goal
	progress.Analytics
}

type CatchUpResponse struct {
	Goal   *domain.Goal
	Missed []progress.MissedDay
	progress.CatchUp
}

// ReminderResponse describes today's pending task, if any.
type ReminderResponse struct {
	Goal         *domain.Goal
	ShouldRemind bool
	DayNumber    int
	Task         *domain.Task
	TimeRequired string
}

// ActivityResponse lists recently completed tasks across active goals.
type ActivityResponse struct {
	Since     time.Time
	Completed []*domain.Task
}
