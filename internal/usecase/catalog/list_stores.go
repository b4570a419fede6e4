package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type ListStores struct {
	repo domain.Repository
}

func NewListStores(repo domain.Repository) *ListStores {
	return &ListStores{repo: repo}
}

// Execute lists every store newest first with its text in language.
// Stores without text in that language get the untitled placeholders.
func (uc *ListStores) Execute(
	ctx context.Context,
	language string,
) ([]dto.StoreDTO, error) {

	language = domain.NormalizeLanguage(language)

	stores, err := uc.repo.ListStores(ctx, language)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StoreDTO, 0, len(stores))
	for i := range stores {
		name, location := resolutionFor(&stores[i], language).Listing()
		out = append(out, dto.StoreDTO{
			ID:        stores[i].ID,
			Name:      name,
			Location:  location,
			CreatedAt: dto.Date(stores[i].CreatedAt),
		})
	}
	return out, nil
}

func resolutionFor(store *models.Store, language string) domain.Resolution {
	for _, tr := range store.Translations {
		if tr.Language == language {
			return domain.Found(tr.Name, tr.Location)
		}
	}
	return domain.Missing
}
