package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
)

// Lookup answers the catalog questions other components ask: does a store
// exist and what is it called in a language.
type Lookup struct {
	repo domain.Repository
}

func NewLookup(repo domain.Repository) *Lookup {
	return &Lookup{repo: repo}
}

// Exists returns ErrStoreNotFound for unknown stores.
func (l *Lookup) Exists(ctx context.Context, storeID string) error {
	_, err := l.repo.GetStore(ctx, storeID)
	return err
}

func (l *Lookup) Resolve(
	ctx context.Context,
	storeID string,
	language string,
) (domain.Resolution, error) {

	res, err := l.ResolveMany(ctx, []string{storeID}, language)
	if err != nil {
		return domain.Missing, err
	}
	return res[storeID], nil
}

// ResolveMany resolves the text of several stores with one query. Stores
// without text in language, or that no longer exist, map to Missing.
func (l *Lookup) ResolveMany(
	ctx context.Context,
	storeIDs []string,
	language string,
) (map[string]domain.Resolution, error) {

	language = domain.NormalizeLanguage(language)

	trs, err := l.repo.FindTranslations(ctx, unique(storeIDs), language)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.Resolution, len(storeIDs))
	for _, id := range storeIDs {
		out[id] = domain.Missing
	}
	for _, tr := range trs {
		out[tr.StoreID] = domain.Found(tr.Name, tr.Location)
	}
	return out, nil
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
