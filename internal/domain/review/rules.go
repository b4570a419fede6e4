package review

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
)

// ===============================
// Rating / comment
// ===============================

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrReviewNotFound  = httperr.New(httperr.KindNotFound, "Review not found")
	ErrMissingFields   = httperr.New(httperr.KindValidation, "Store ID and comment are required")
	ErrRatingRange     = httperr.New(httperr.KindValidation, "Rating must be between 1 and 5")
	ErrInvalidPage     = httperr.New(httperr.KindValidation, "Page must be a positive integer")
	ErrInvalidPageSize = httperr.New(httperr.KindValidation, "Limit must be a positive integer")
)

// ValidateSubmission checks the fields a customer supplies. A nil rating
// means the customer did not rate.
func ValidateSubmission(storeID, comment string, rating *int) error {
	if strings.TrimSpace(storeID) == "" || strings.TrimSpace(comment) == "" {
		return ErrMissingFields
	}
	return ValidateRating(rating)
}

func ValidateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < MinRating || *rating > MaxRating {
		return ErrRatingRange
	}
	return nil
}

// ===============================
// Pagination
// ===============================

type PageInfo struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

// ValidatePage checks a 1-indexed page request. Pages whose offset does
// not fit in an int are rejected.
func ValidatePage(page, limit int) error {
	if limit < 1 {
		return ErrInvalidPageSize
	}
	if page < 1 || page-1 > math.MaxInt/limit {
		return ErrInvalidPage
	}
	return nil
}

// Offset must only be called after ValidatePage.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewPageInfo computes pages as ceil(total / limit).
func NewPageInfo(page, limit int, total int64) PageInfo {
	pages := int(total / int64(limit))
	if total%int64(limit) != 0 {
		pages++
	}
	return PageInfo{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
