package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup that matches no row.
var ErrNotFound = errors.New("not found")

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Goal, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Archive(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	CreateBatch(ctx context.Context, tasks []*domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetByGoalDay(ctx context.Context, goalID string, day int) (*domain.Task, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Task, error)
	ListCompletedSince(ctx context.Context, since time.Time) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	DeleteByGoal(ctx context.Context, goalID string) error
}

type ShortIDSequenceRepo interface {
	NextSeq(ctx context.Context, prefix string) (int, error)
}
