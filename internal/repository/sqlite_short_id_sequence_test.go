package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/skillpilot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortIDSequence_StartsAtOneAndIncrements(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteShortIDSequenceRepo(db)
	ctx := context.Background()

	first, err := repo.NextSeq(ctx, "FD")
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := repo.NextSeq(ctx, "FD")
	require.NoError(t, err)
	assert.Equal(t, 2, second)

	other, err := repo.NextSeq(ctx, "DS")
	require.NoError(t, err)
	assert.Equal(t, 1, other, "prefixes are independent")
}

func TestShortIDSequence_SeedsFromExistingGoals(t *testing.T) {
	db := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(db)
	repo := NewSQLiteShortIDSequenceRepo(db)
	ctx := context.Background()

	require.NoError(t, goals.Create(ctx, testutil.NewTestGoal("Go", testutil.WithShortID("GO07"))))
	require.NoError(t, goals.Create(ctx, testutil.NewTestGoal("Go more", testutil.WithShortID("GOLF03"))))

	next, err := repo.NextSeq(ctx, "GO")
	require.NoError(t, err)
	assert.Equal(t, 8, next)
}
