package review

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type ListReviewsInput struct {
	Language string
	Page     int
	Limit    int
}

type ListReviews struct {
	repo   domain.Repository
	stores StoreLookup
}

func NewListReviews(
	repo domain.Repository,
	stores StoreLookup,
) *ListReviews {
	return &ListReviews{
		repo:   repo,
		stores: stores,
	}
}

// Execute returns one page of reviews, newest first, with store names in
// the requested language.
func (uc *ListReviews) Execute(
	ctx context.Context,
	in ListReviewsInput,
) (*dto.ReviewPageDTO, error) {

	if err := domain.ValidatePage(in.Page, in.Limit); err != nil {
		return nil, err
	}

	reviews, total, err := uc.repo.List(ctx, domain.Offset(in.Page, in.Limit), in.Limit)
	if err != nil {
		return nil, err
	}

	names, err := uc.stores.ResolveMany(ctx, storeIDs(reviews), catalog.NormalizeLanguage(in.Language))
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReviewListDTO, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, dto.ReviewListDTO{
			ID:         rv.ID,
			StoreName:  names[rv.StoreID].DisplayName(),
			Rating:     rv.Rating,
			Comment:    rv.Comment,
			Date:       dto.Date(rv.CreatedAt),
			IsApproved: rv.IsApproved,
		})
	}

	info := domain.NewPageInfo(in.Page, in.Limit, total)

	return &dto.ReviewPageDTO{
		Reviews: out,
		Pagination: dto.PaginationDTO{
			Page:  info.Page,
			Limit: info.Limit,
			Total: info.Total,
			Pages: info.Pages,
		},
	}, nil
}

func storeIDs(reviews []models.Review) []string {
	ids := make([]string, 0, len(reviews))
	for _, rv := range reviews {
		ids = append(ids, rv.StoreID)
	}
	return ids
}
