package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/httpresp"
	"github.com/BruksfildServices01/feedback-hub/internal/middleware"
	settingsuc "github.com/BruksfildServices01/feedback-hub/internal/usecase/settings"
)

type SettingsHandler struct {
	get    *settingsuc.GetSettings
	update *settingsuc.UpdateSettings
}

func NewSettingsHandler(
	get *settingsuc.GetSettings,
	update *settingsuc.UpdateSettings,
) *SettingsHandler {
	return &SettingsHandler{get: get, update: update}
}

// UpdateSettingsRequest is a partial update: absent fields keep their
// stored value.
type UpdateSettingsRequest struct {
	WebhookURL        *string `json:"webhookUrl"`
	NotificationEmail *string `json:"notificationEmail"`
	AutoApprove       *bool   `json:"autoApprove"`
	MinRating         *int    `json:"minRating"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.update.Execute(c.Request.Context(), middleware.ActorID(c), settings.Patch{
		WebhookURL:        req.WebhookURL,
		NotificationEmail: req.NotificationEmail,
		AutoApprove:       req.AutoApprove,
		MinRating:         req.MinRating,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, out)
}
