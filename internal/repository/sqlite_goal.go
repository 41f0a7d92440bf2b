package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpilot/internal/db"
	"github.com/alexanderramin/skillpilot/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, short_id, title, level, hours_per_day, start_date, deadline, catalog_key, status, archived_at, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.ShortID,
		g.Title,
		string(g.Level),
		g.HoursPerDay,
		g.StartDate.Format(dateLayout),
		g.Deadline.Format(dateLayout),
		g.CatalogKey,
		string(g.Status),
		nullableTimeToString(g.ArchivedAt, time.RFC3339),
		g.CreatedAt.UTC().Format(time.RFC3339),
		g.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	return r.scanGoal(row)
}

func (r *SQLiteGoalRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE UPPER(short_id) = UPPER(?)`, shortID)
	return r.scanGoal(row)
}

func (r *SQLiteGoalRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE archived_at IS NULL ORDER BY created_at, short_id`
	if includeArchived {
		query = `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at, short_id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := r.scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET short_id = ?, title = ?, level = ?, hours_per_day = ?, start_date = ?, deadline = ?,
		catalog_key = ?, status = ?, archived_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.ShortID,
		g.Title,
		string(g.Level),
		g.HoursPerDay,
		g.StartDate.Format(dateLayout),
		g.Deadline.Format(dateLayout),
		g.CatalogKey,
		string(g.Status),
		nullableTimeToString(g.ArchivedAt, time.RFC3339),
		g.UpdatedAt.UTC().Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return requireAffected(res, "goal")
}

// Archive marks an active goal archived at the given time. Archiving an
// already archived goal keeps the original timestamp.
func (r *SQLiteGoalRepo) Archive(ctx context.Context, id string, at time.Time) error {
	ts := at.UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET status = 'archived', archived_at = COALESCE(archived_at, ?), updated_at = ? WHERE id = ?`, ts, ts, id)
	if err != nil {
		return fmt.Errorf("archiving goal: %w", err)
	}
	return requireAffected(res, "goal")
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return requireAffected(res, "goal")
}

func (r *SQLiteGoalRepo) scanGoal(row scanner) (*domain.Goal, error) {
	var g domain.Goal
	var level, status, startStr, deadlineStr, createdStr, updatedStr string
	var archivedAt sql.NullString

	err := row.Scan(
		&g.ID, &g.ShortID, &g.Title, &level, &g.HoursPerDay, &startStr, &deadlineStr,
		&g.CatalogKey, &status, &archivedAt, &createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Level = domain.Level(level)
	g.Status = domain.GoalStatus(status)
	g.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)

	if g.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if g.Deadline, err = time.Parse(dateLayout, deadlineStr); err != nil {
		return nil, fmt.Errorf("parsing deadline: %w", err)
	}
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &g, nil
}

func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected %s rows: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
