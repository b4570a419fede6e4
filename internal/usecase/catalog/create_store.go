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

type CreateStoreInput struct {
	ActorID  string
	Name     string
	Location string
	Language string
}

// ======================================================
// USE CASE
// ======================================================

type CreateStore struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateStore(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateStore {
	return &CreateStore{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateStore) Execute(
	ctx context.Context,
	in CreateStoreInput,
) (*dto.StoreDTO, error) {

	if err := domain.ValidateContent(in.Name, in.Location); err != nil {
		return nil, err
	}

	language := domain.NormalizeLanguage(in.Language)

	store := &models.Store{}
	first := &models.StoreTranslation{
		Language: language,
		Name:     strings.TrimSpace(in.Name),
		Location: strings.TrimSpace(in.Location),
	}

	if err := uc.repo.CreateStore(ctx, store, first); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   audit.ActionStoreCreated,
		Entity:   audit.EntityStore,
		EntityID: store.ID,
		Metadata: map[string]string{"language": language},
	})

	return &dto.StoreDTO{
		ID:        store.ID,
		Name:      first.Name,
		Location:  first.Location,
		CreatedAt: dto.Date(store.CreatedAt),
	}, nil
}
