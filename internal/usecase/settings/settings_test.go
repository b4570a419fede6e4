package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	"github.com/BruksfildServices01/feedback-hub/internal/db/dbtest"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/infra/repository"
)

type fakeRecorder struct {
	events []audit.Event
}

func (f *fakeRecorder) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestGetSettingsReturnsDefaults(t *testing.T) {
	repo := repository.NewSettingsGormRepository(dbtest.Open(t))

	s, err := NewGetSettings(repo).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "", s.WebhookURL)
	assert.Equal(t, "", s.NotificationEmail)
	assert.True(t, s.AutoApprove)
	assert.Equal(t, 1, s.MinRating)
}

func TestUpdateSettingsPartial(t *testing.T) {
	repo := repository.NewSettingsGormRepository(dbtest.Open(t))
	rec := &fakeRecorder{}
	uc := NewUpdateSettings(repo, rec)
	ctx := context.Background()

	s, err := uc.Execute(ctx, "admin", domain.Patch{
		WebhookURL: strPtr("https://hooks.example.com/r"),
		MinRating:  intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.com/r", s.WebhookURL)
	assert.Equal(t, 3, s.MinRating)
	assert.True(t, s.AutoApprove)

	s, err = uc.Execute(ctx, "admin", domain.Patch{AutoApprove: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, s.AutoApprove)
	assert.Equal(t, "https://hooks.example.com/r", s.WebhookURL)
	assert.Equal(t, 3, s.MinRating)

	require.Len(t, rec.events, 2)
	assert.Equal(t, audit.ActionSettingsUpdated, rec.events[0].Action)
}

func TestUpdateSettingsRejectsOutOfRange(t *testing.T) {
	repo := repository.NewSettingsGormRepository(dbtest.Open(t))
	uc := NewUpdateSettings(repo, &fakeRecorder{})
	ctx := context.Background()

	for _, v := range []int{0, 6, -1} {
		_, err := uc.Execute(ctx, "admin", domain.Patch{MinRating: intPtr(v)})
		require.ErrorIs(t, err, domain.ErrMinRatingRange)
	}

	s, err := NewGetSettings(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.MinRating)
}

func TestEmptyPatchIsNotAudited(t *testing.T) {
	rec := &fakeRecorder{}
	uc := NewUpdateSettings(repository.NewSettingsGormRepository(dbtest.Open(t)), rec)

	s, err := uc.Execute(context.Background(), "admin", domain.Patch{})
	require.NoError(t, err)
	assert.True(t, s.AutoApprove)
	assert.Empty(t, rec.events)
}
