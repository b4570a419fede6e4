package review

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/domain/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
	"github.com/BruksfildServices01/feedback-hub/internal/metrics"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
	"github.com/BruksfildServices01/feedback-hub/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type SubmitReviewInput struct {
	StoreID  string
	Comment  string
	Rating   *int
	Language string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitReview struct {
	repo     domain.Repository
	stores   StoreLookup
	settings SettingsSource
	notifier notify.Notifier
}

func NewSubmitReview(
	repo domain.Repository,
	stores StoreLookup,
	settings SettingsSource,
	notifier notify.Notifier,
) *SubmitReview {
	return &SubmitReview{
		repo:     repo,
		stores:   stores,
		settings: settings,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitReview) Execute(
	ctx context.Context,
	in SubmitReviewInput,
) (*dto.SubmittedReviewDTO, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	if err := domain.ValidateSubmission(in.StoreID, in.Comment, in.Rating); err != nil {
		return nil, err
	}

	language := catalog.NormalizeLanguage(in.Language)

	if err := uc.stores.Exists(ctx, in.StoreID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Approval state is fixed at submission time
	// --------------------------------------------------
	cfg, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	rv := &models.Review{
		StoreID:    in.StoreID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
		Language:   language,
		IsApproved: cfg.AutoApprove,
	}

	if err := uc.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	metrics.ObserveReview(rv.IsApproved)

	// --------------------------------------------------
	// Display name
	// --------------------------------------------------
	storeName := catalog.UnknownStore
	if res, err := uc.stores.Resolve(ctx, rv.StoreID, language); err == nil {
		storeName = res.DisplayName()
	} else {
		log.Ctx(ctx).Warn().Err(err).Str("store_id", rv.StoreID).Msg("store name lookup failed")
	}

	// --------------------------------------------------
	// Webhook
	// --------------------------------------------------
	if settings.ShouldNotify(*cfg, rv.Rating) {
		uc.notifier.Notify(cfg.WebhookURL, notify.Payload{
			Event: notify.EventReviewCreated,
			Review: notify.ReviewPayload{
				ID:         rv.ID,
				StoreID:    rv.StoreID,
				Rating:     rv.Rating,
				Comment:    rv.Comment,
				Language:   rv.Language,
				IsApproved: rv.IsApproved,
				CreatedAt:  rv.CreatedAt,
			},
			StoreName:         storeName,
			NotificationEmail: cfg.NotificationEmail,
		})
	}

	return &dto.SubmittedReviewDTO{
		ID:        rv.ID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		Language:  rv.Language,
		CreatedAt: dto.Date(rv.CreatedAt),
		StoreName: storeName,
	}, nil
}
