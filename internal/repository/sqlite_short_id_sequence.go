package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpilot/internal/db"
)

// SQLiteShortIDSequenceRepo allocates per-prefix goal short ID numbers
// atomically using the short_id_sequences table.
type SQLiteShortIDSequenceRepo struct {
	db db.DBTX
}

func NewSQLiteShortIDSequenceRepo(conn db.DBTX) *SQLiteShortIDSequenceRepo {
	return &SQLiteShortIDSequenceRepo{db: conn}
}

// NextSeq returns the next available number for prefix. A prefix seen for the
// first time is seeded past any short IDs already stored with that prefix.
func (r *SQLiteShortIDSequenceRepo) NextSeq(ctx context.Context, prefix string) (int, error) {
	seedQuery := `INSERT OR IGNORE INTO short_id_sequences (prefix, next_seq)
		SELECT ?, COALESCE(MAX(CAST(SUBSTR(short_id, LENGTH(?) + 1) AS INTEGER)), 0) + 1
		FROM goals
		WHERE short_id GLOB ? || '[0-9]*'`
	if _, err := r.db.ExecContext(ctx, seedQuery, prefix, prefix, prefix); err != nil {
		return 0, fmt.Errorf("seeding short id sequence for %s: %w", prefix, err)
	}

	var next int
	allocQuery := `UPDATE short_id_sequences
		SET next_seq = next_seq + 1
		WHERE prefix = ?
		RETURNING next_seq - 1`
	if err := r.db.QueryRowContext(ctx, allocQuery, prefix).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next seq for prefix %s: %w", prefix, err)
	}
	return next, nil
}
