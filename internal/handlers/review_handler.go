package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/httpresp"
	"github.com/BruksfildServices01/feedback-hub/internal/middleware"
	reviewuc "github.com/BruksfildServices01/feedback-hub/internal/usecase/review"
)

const (
	defaultReviewPage  = 1
	defaultReviewLimit = 10
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	submit  *reviewuc.SubmitReview
	list    *reviewuc.ListReviews
	approve *reviewuc.SetApproval
	delete  *reviewuc.DeleteReview
	export  *reviewuc.ExportReviews
}

func NewReviewHandler(
	submit *reviewuc.SubmitReview,
	list *reviewuc.ListReviews,
	approve *reviewuc.SetApproval,
	del *reviewuc.DeleteReview,
	export *reviewuc.ExportReviews,
) *ReviewHandler {
	return &ReviewHandler{
		submit:  submit,
		list:    list,
		approve: approve,
		delete:  del,
		export:  export,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SubmitReviewRequest struct {
	StoreID  string `json:"storeId"`
	Rating   *int   `json:"rating"`
	Comment  string `json:"comment"`
	Language string `json:"language" binding:"omitempty,langtag"`
}

type ApproveReviewRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ReviewHandler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.submit.Execute(c.Request.Context(), reviewuc.SubmitReviewInput{
		StoreID:  req.StoreID,
		Comment:  req.Comment,
		Rating:   req.Rating,
		Language: req.Language,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, out)
}

// ======================================================
// ADMIN
// ======================================================

func (h *ReviewHandler) List(c *gin.Context) {
	language, ok := languageQuery(c)
	if !ok {
		return
	}
	page, ok := intQuery(c, "page", defaultReviewPage, review.ErrInvalidPage)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", defaultReviewLimit, review.ErrInvalidPageSize)
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), reviewuc.ListReviewsInput{
		Language: language,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *ReviewHandler) Approve(c *gin.Context) {
	var req ApproveReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.approve.Execute(c.Request.Context(), middleware.ActorID(c), c.Param("id"), *req.IsApproved)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Message(c, "Review deleted successfully")
}

func (h *ReviewHandler) Export(c *gin.Context) {
	language, ok := languageQuery(c)
	if !ok {
		return
	}

	out, err := h.export.Execute(c.Request.Context(), middleware.ActorID(c), language)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, out)
}
