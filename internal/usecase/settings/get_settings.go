package settings

import (
	"context"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type GetSettings struct {
	repo domain.Repository
}

func NewGetSettings(repo domain.Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

// Load returns the stored settings, creating the defaults on first
// access.
func (uc *GetSettings) Load(ctx context.Context) (*models.Settings, error) {
	return uc.repo.GetOrCreate(ctx, domain.Defaults())
}

func (uc *GetSettings) Execute(ctx context.Context) (*dto.SettingsDTO, error) {
	s, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := ToDTO(s)
	return &out, nil
}

func ToDTO(s *models.Settings) dto.SettingsDTO {
	return dto.SettingsDTO{
		WebhookURL:        s.WebhookURL,
		NotificationEmail: s.NotificationEmail,
		AutoApprove:       s.AutoApprove,
		MinRating:         s.MinRating,
	}
}
