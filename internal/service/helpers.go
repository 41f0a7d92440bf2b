package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/google/uuid"
)

// resolveGoal looks a goal up by UUID, or by short ID for anything else.
func resolveGoal(ctx context.Context, goals repository.GoalRepo, ref string) (*domain.Goal, error) {
	var (
		goal *domain.Goal
		err  error
	)
	if _, parseErr := uuid.Parse(ref); parseErr == nil {
		goal, err = goals.GetByID(ctx, ref)
	} else {
		goal, err = goals.GetByShortID(ctx, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving goal %q: %w", ref, err)
	}
	return goal, nil
}

// calendarDay keeps the local calendar date of t as a UTC midnight, the form
// dates are stored in.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
