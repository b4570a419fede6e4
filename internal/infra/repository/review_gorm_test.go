package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/feedback-hub/internal/db/dbtest"
	"github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

func intPtr(v int) *int { return &v }

func TestReviewListPaginatesNewestFirst(t *testing.T) {
	repo := NewReviewGormRepository(dbtest.Open(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rv := &models.Review{
			StoreID:   "store-1",
			Rating:    intPtr(i + 1),
			Comment:   "comment",
			Language:  "en",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, rv))
	}

	page, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, 5, *page[0].Rating)
	assert.Equal(t, 4, *page[1].Rating)

	last, _, err := repo.List(ctx, 4, 2)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, 1, *last[0].Rating)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestReviewUnratedIsStoredAsNull(t *testing.T) {
	repo := NewReviewGormRepository(dbtest.Open(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Review{StoreID: "s", Comment: "ok", Language: "en"}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Rating)
}

func TestReviewSetApprovalAndDelete(t *testing.T) {
	repo := NewReviewGormRepository(dbtest.Open(t))
	ctx := context.Background()

	rv := &models.Review{StoreID: "s", Comment: "ok", Language: "en", IsApproved: true}
	require.NoError(t, repo.Create(ctx, rv))

	updated, err := repo.SetApproval(ctx, rv.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsApproved)

	// same value again still finds the row
	updated, err = repo.SetApproval(ctx, rv.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsApproved)

	_, err = repo.SetApproval(ctx, "missing", true)
	require.ErrorIs(t, err, review.ErrReviewNotFound)

	require.NoError(t, repo.Delete(ctx, rv.ID))
	require.ErrorIs(t, repo.Delete(ctx, rv.ID), review.ErrReviewNotFound)
}
