package review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	"github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
)

var ErrExportUnavailable = httperr.New(httperr.KindUnavailable, "Reviews export is not configured")

type ExportedReview struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"storeId"`
	StoreName  string    `json:"storeName"`
	Rating     *int      `json:"rating"`
	Comment    string    `json:"comment"`
	Language   string    `json:"language"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ExportOutput struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type ExportReviews struct {
	repo     domain.Repository
	stores   StoreLookup
	uploader Uploader
	audit    audit.Recorder
	now      func() time.Time
}

// NewExportReviews accepts a nil uploader; Execute then fails with
// ErrExportUnavailable.
func NewExportReviews(
	repo domain.Repository,
	stores StoreLookup,
	uploader Uploader,
	audit audit.Recorder,
) *ExportReviews {
	return &ExportReviews{
		repo:     repo,
		stores:   stores,
		uploader: uploader,
		audit:    audit,
		now:      time.Now,
	}
}

// Execute uploads a JSON snapshot of every review under
// exports/reviews-<timestamp>.json.
func (uc *ExportReviews) Execute(
	ctx context.Context,
	actorID string,
	language string,
) (*ExportOutput, error) {

	if uc.uploader == nil {
		return nil, ErrExportUnavailable
	}

	reviews, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names, err := uc.stores.ResolveMany(ctx, storeIDs(reviews), catalog.NormalizeLanguage(language))
	if err != nil {
		return nil, err
	}

	rows := make([]ExportedReview, 0, len(reviews))
	for _, rv := range reviews {
		rows = append(rows, ExportedReview{
			ID:         rv.ID,
			StoreID:    rv.StoreID,
			StoreName:  names[rv.StoreID].DisplayName(),
			Rating:     rv.Rating,
			Comment:    rv.Comment,
			Language:   rv.Language,
			IsApproved: rv.IsApproved,
			CreatedAt:  rv.CreatedAt.UTC(),
		})
	}

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/reviews-%s.json", uc.now().UTC().Format("20060102T150405Z"))
	if err := uc.uploader.Upload(ctx, key, body); err != nil {
		return nil, httperr.Wrap(httperr.KindUnavailable, "Reviews export failed", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionReviewsExported,
		Entity:   audit.EntityReview,
		Metadata: map[string]any{"key": key, "count": len(rows)},
	})

	return &ExportOutput{Key: key, Count: len(rows)}, nil
}
