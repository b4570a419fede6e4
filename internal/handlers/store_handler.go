package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/httpresp"
	"github.com/BruksfildServices01/feedback-hub/internal/middleware"
	cataloguc "github.com/BruksfildServices01/feedback-hub/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type StoreHandler struct {
	list           *cataloguc.ListStores
	create         *cataloguc.CreateStore
	setTranslation *cataloguc.SetTranslation
	delete         *cataloguc.DeleteStore
}

func NewStoreHandler(
	list *cataloguc.ListStores,
	create *cataloguc.CreateStore,
	setTranslation *cataloguc.SetTranslation,
	del *cataloguc.DeleteStore,
) *StoreHandler {
	return &StoreHandler{
		list:           list,
		create:         create,
		setTranslation: setTranslation,
		delete:         del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// StoreRequest carries the text of a store in one language. Presence of
// name and location is checked by the catalog.
type StoreRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Language string `json:"language" binding:"omitempty,langtag"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *StoreHandler) List(c *gin.Context) {
	language, ok := languageQuery(c)
	if !ok {
		return
	}

	stores, err := h.list.Execute(c.Request.Context(), language)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, stores)
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req StoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.create.Execute(c.Request.Context(), cataloguc.CreateStoreInput{
		ActorID:  middleware.ActorID(c),
		Name:     req.Name,
		Location: req.Location,
		Language: req.Language,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Created(c, store)
}

func (h *StoreHandler) Update(c *gin.Context) {
	var req StoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.setTranslation.Execute(c.Request.Context(), cataloguc.SetTranslationInput{
		ActorID:  middleware.ActorID(c),
		StoreID:  c.Param("id"),
		Language: req.Language,
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, store)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.Message(c, "Store deleted successfully")
}
