package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SetTranslationInput struct {
	ActorID  string
	StoreID  string
	Language string
	Name     string
	Location string
}

// ======================================================
// USE CASE
// ======================================================

type SetTranslation struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewSetTranslation(
	repo domain.Repository,
	audit audit.Recorder,
) *SetTranslation {
	return &SetTranslation{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates or replaces the store's text for one language. Other
// languages are untouched.
func (uc *SetTranslation) Execute(
	ctx context.Context,
	in SetTranslationInput,
) (*dto.StoreDTO, error) {

	if err := domain.ValidateContent(in.Name, in.Location); err != nil {
		return nil, err
	}

	store, err := uc.repo.GetStore(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}

	language := domain.NormalizeLanguage(in.Language)

	tr, err := uc.repo.UpsertTranslation(ctx, &models.StoreTranslation{
		StoreID:  store.ID,
		Language: language,
		Name:     strings.TrimSpace(in.Name),
		Location: strings.TrimSpace(in.Location),
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   audit.ActionStoreTranslated,
		Entity:   audit.EntityStore,
		EntityID: store.ID,
		Metadata: map[string]string{"language": language},
	})

	return &dto.StoreDTO{
		ID:        store.ID,
		Name:      tr.Name,
		Location:  tr.Location,
		CreatedAt: dto.Date(store.CreatedAt),
	}, nil
}
