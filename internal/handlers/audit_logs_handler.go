package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))

	filter := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   dateQuery(c, "from"),
		To:     dateQuery(c, "to"),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  filter.Page,
		"limit": filter.Limit,
		"total": total,
		"logs":  logs,
	})
}

// dateQuery parses a YYYY-MM-DD parameter; malformed values are ignored.
func dateQuery(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
