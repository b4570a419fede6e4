package settings

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
)

type UpdateSettings struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateSettings(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateSettings {
	return &UpdateSettings{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies the fields present in patch and returns the full
// settings. An empty patch only ensures the row exists.
func (uc *UpdateSettings) Execute(
	ctx context.Context,
	actorID string,
	patch domain.Patch,
) (*dto.SettingsDTO, error) {

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s, err := uc.repo.Update(ctx, patch.Columns())
	if err != nil {
		return nil, err
	}

	if !patch.Empty() {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   audit.ActionSettingsUpdated,
			Entity:   audit.EntitySettings,
			EntityID: domain.DefaultID,
			Metadata: patch.Columns(),
		})
	}

	out := ToDTO(s)
	return &out, nil
}
