package review

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
)

// ======================================================
// APPROVAL
// ======================================================

type SetApproval struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewSetApproval(
	repo domain.Repository,
	audit audit.Recorder,
) *SetApproval {
	return &SetApproval{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetApproval) Execute(
	ctx context.Context,
	actorID string,
	reviewID string,
	approved bool,
) (*dto.ReviewApprovalDTO, error) {

	rv, err := uc.repo.SetApproval(ctx, reviewID, approved)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionReviewApproved,
		Entity:   audit.EntityReview,
		EntityID: rv.ID,
		Metadata: map[string]bool{"isApproved": rv.IsApproved},
	})

	return &dto.ReviewApprovalDTO{
		ID:         rv.ID,
		IsApproved: rv.IsApproved,
	}, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteReview struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteReview(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteReview {
	return &DeleteReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	actorID string,
	reviewID string,
) error {

	if err := uc.repo.Delete(ctx, reviewID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionReviewDeleted,
		Entity:   audit.EntityReview,
		EntityID: reviewID,
	})

	return nil
}
