package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpilot/internal/db"
	"github.com/alexanderramin/skillpilot/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Resources are
// stored as a JSON array in a TEXT column.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, goal_id, day, topic, category, description, duration, resources, status, completed_at, created_at, updated_at`

func (r *SQLiteTaskRepo) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, t := range tasks {
		resources, err := encodeResources(t.Resources)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, query,
			t.ID,
			t.GoalID,
			t.Day,
			t.Topic,
			t.Category,
			t.Description,
			t.Duration,
			resources,
			string(t.Status),
			nullableTimeToString(t.CompletedAt, time.RFC3339),
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting task day %d: %w", t.Day, err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) GetByGoalDay(ctx context.Context, goalID string, day int) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE goal_id = ? AND day = ?`, goalID, day)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE goal_id = ? ORDER BY day`, goalID)
}

// ListCompletedSince returns completed tasks of all active goals whose
// completion time is at or after since.
func (r *SQLiteTaskRepo) ListCompletedSince(ctx context.Context, since time.Time) ([]*domain.Task, error) {
	query := `SELECT t.id, t.goal_id, t.day, t.topic, t.category, t.description, t.duration, t.resources,
			t.status, t.completed_at, t.created_at, t.updated_at
		FROM tasks t
		JOIN goals g ON g.id = t.goal_id
		WHERE t.status = 'completed' AND t.completed_at >= ? AND g.archived_at IS NULL
		ORDER BY t.completed_at`
	return r.queryTasks(ctx, query, since.UTC().Format(time.RFC3339))
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	resources, err := encodeResources(t.Resources)
	if err != nil {
		return err
	}
	query := `UPDATE tasks SET topic = ?, category = ?, description = ?, duration = ?, resources = ?,
		status = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Topic,
		t.Category,
		t.Description,
		t.Duration,
		resources,
		string(t.Status),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) DeleteByGoal(ctx context.Context, goalID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE goal_id = ?`, goalID); err != nil {
		return fmt.Errorf("deleting tasks: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row scanner) (*domain.Task, error) {
	var t domain.Task
	var status, resources, createdStr, updatedStr string
	var completedAt sql.NullString

	err := row.Scan(
		&t.ID, &t.GoalID, &t.Day, &t.Topic, &t.Category, &t.Description, &t.Duration,
		&resources, &status, &completedAt, &createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(status)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	if err := json.Unmarshal([]byte(resources), &t.Resources); err != nil {
		return nil, fmt.Errorf("decoding task resources: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

func encodeResources(resources []string) (string, error) {
	if resources == nil {
		resources = []string{}
	}
	b, err := json.Marshal(resources)
	if err != nil {
		return "", fmt.Errorf("encoding task resources: %w", err)
	}
	return string(b), nil
}
