package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/skillpilot/internal/db"
)

// FailingWriteUoW runs transactions in which every write to Table fails
// with Err. Reads and writes to other tables go through, so a test can break
// one step of a multi-table use case (for example the task insert after the
// goal insert) and check that everything before it was rolled back. An empty
// Table fails nothing.
type FailingWriteUoW struct {
	DB    *sql.DB
	Table string
	Err   error

	failures atomic.Int32
}

// Failures reports how many writes were rejected.
func (u *FailingWriteUoW) Failures() int {
	return int(u.failures.Load())
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingWrites{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	uow *FailingWriteUoW
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.Table != "" && strings.EqualFold(writeTarget(query), f.uow.Table) {
		f.uow.failures.Add(1)
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// writeTarget returns the table an INSERT, UPDATE or DELETE statement writes
// to, or "" for anything else.
func writeTarget(query string) string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) < 2 {
		return ""
	}
	var target string
	switch fields[0] {
	case "insert":
		for i, f := range fields[:len(fields)-1] {
			if f == "into" {
				target = fields[i+1]
				break
			}
		}
	case "update":
		target = fields[1]
	case "delete":
		if len(fields) > 2 && fields[1] == "from" {
			target = fields[2]
		}
	}
	target, _, _ = strings.Cut(target, "(")
	return target
}
