package settings

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

// DefaultID is the well-known key of the singleton settings row.
const DefaultID = "default"

const (
	MinRatingFloor   = 1
	MinRatingCeiling = 5
)

var (
	ErrMinRatingRange = httperr.New(httperr.KindValidation, "Minimum rating must be between 1 and 5")
	ErrWebhookURL     = httperr.New(httperr.KindValidation, "Webhook URL must be an absolute http(s) URL")
	ErrEmail          = httperr.New(httperr.KindValidation, "Notification email is invalid")
)

// Defaults is the configuration created on first access.
func Defaults() models.Settings {
	return models.Settings{
		ID:                DefaultID,
		WebhookURL:        "",
		NotificationEmail: "",
		AutoApprove:       true,
		MinRating:         1,
	}
}

// Patch is a partial update. Nil fields keep their stored value.
type Patch struct {
	WebhookURL        *string
	NotificationEmail *string
	AutoApprove       *bool
	MinRating         *int
}

func (p Patch) Empty() bool {
	return p.WebhookURL == nil && p.NotificationEmail == nil && p.AutoApprove == nil && p.MinRating == nil
}

func (p Patch) Validate() error {
	if p.MinRating != nil && (*p.MinRating < MinRatingFloor || *p.MinRating > MinRatingCeiling) {
		return ErrMinRatingRange
	}
	if p.WebhookURL != nil && *p.WebhookURL != "" {
		u, err := url.Parse(*p.WebhookURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return ErrWebhookURL
		}
	}
	if p.NotificationEmail != nil && *p.NotificationEmail != "" {
		if _, err := mail.ParseAddress(*p.NotificationEmail); err != nil {
			return ErrEmail
		}
	}
	return nil
}

// Columns returns the column assignments for the present fields only.
func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.WebhookURL != nil {
		cols["webhook_url"] = strings.TrimSpace(*p.WebhookURL)
	}
	if p.NotificationEmail != nil {
		cols["notification_email"] = strings.TrimSpace(*p.NotificationEmail)
	}
	if p.AutoApprove != nil {
		cols["auto_approve"] = *p.AutoApprove
	}
	if p.MinRating != nil {
		cols["min_rating"] = *p.MinRating
	}
	return cols
}

// ShouldNotify reports whether a submitted review is delivered to the
// webhook: a target must be configured and the review must be unrated or
// rated at least MinRating.
func ShouldNotify(s models.Settings, rating *int) bool {
	if s.WebhookURL == "" {
		return false
	}
	return rating == nil || *rating >= s.MinRating
}
