package catalog

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
)

type DeleteStore struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteStore(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteStore {
	return &DeleteStore{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the store and all of its translations. Reviews that
// referenced it are kept.
func (uc *DeleteStore) Execute(
	ctx context.Context,
	actorID string,
	storeID string,
) error {

	if err := uc.repo.DeleteStore(ctx, storeID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionStoreDeleted,
		Entity:   audit.EntityStore,
		EntityID: storeID,
	})

	return nil
}
