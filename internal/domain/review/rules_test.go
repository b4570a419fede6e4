package review

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateRating(t *testing.T) {
	require.NoError(t, ValidateRating(nil))

	for v := MinRating; v <= MaxRating; v++ {
		require.NoError(t, ValidateRating(intPtr(v)), "rating %d", v)
	}

	for _, v := range []int{-1, 0, 6, 100} {
		require.ErrorIs(t, ValidateRating(intPtr(v)), ErrRatingRange, "rating %d", v)
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name    string
		storeID string
		comment string
		rating  *int
		wantErr error
	}{
		{"ok unrated", "s1", "Great!", nil, nil},
		{"ok rated", "s1", "Great!", intPtr(5), nil},
		{"empty comment", "s1", "", intPtr(5), ErrMissingFields},
		{"blank comment", "s1", "   ", nil, ErrMissingFields},
		{"missing store", "", "Great!", nil, ErrMissingFields},
		{"rating six", "s1", "Great!", intPtr(6), ErrRatingRange},
		{"rating zero", "s1", "Great!", intPtr(0), ErrRatingRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.storeID, tt.comment, tt.rating)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePage(t *testing.T) {
	require.NoError(t, ValidatePage(1, 1))
	require.ErrorIs(t, ValidatePage(0, 10), ErrInvalidPage)
	require.ErrorIs(t, ValidatePage(1, 0), ErrInvalidPageSize)
	require.ErrorIs(t, ValidatePage(-3, 10), ErrInvalidPage)
	require.ErrorIs(t, ValidatePage(0, 0), ErrInvalidPageSize)

	require.ErrorIs(t, ValidatePage(math.MaxInt, 10), ErrInvalidPage)
	require.ErrorIs(t, ValidatePage(3, math.MaxInt), ErrInvalidPage)
	require.NoError(t, ValidatePage(2, math.MaxInt))
	require.NoError(t, ValidatePage(1, math.MaxInt))
	require.NoError(t, ValidatePage(math.MaxInt/10+1, 10))
}

func TestPageInfo(t *testing.T) {
	for total := int64(0); total <= 25; total++ {
		for limit := 1; limit <= 7; limit++ {
			info := NewPageInfo(1, limit, total)

			want := 0
			for covered := int64(0); covered < total; covered += int64(limit) {
				want++
			}
			assert.Equal(t, want, info.Pages, "total=%d limit=%d", total, limit)
		}
	}

	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
}

func TestPageInfoLargeValues(t *testing.T) {
	assert.Equal(t, 1, NewPageInfo(1, math.MaxInt, 5).Pages)
	assert.Equal(t, 0, NewPageInfo(1, math.MaxInt, 0).Pages)
	assert.Equal(t, 2, NewPageInfo(1, math.MaxInt-1, int64(math.MaxInt)).Pages)

	page := math.MaxInt/10 + 1
	require.NoError(t, ValidatePage(page, 10))
	assert.GreaterOrEqual(t, Offset(page, 10), 0)
}
