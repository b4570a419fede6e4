package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/validators"
)

var ErrInvalidLanguage = httperr.New(httperr.KindValidation, "language must be a two-letter language code")

// bindJSON binds the request body and aborts with a validation error on
// failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Abort(c, httperr.Wrap(httperr.KindValidation, validators.Message(err), err))
		return false
	}
	return true
}

// languageQuery reads ?language=, defaulting to the base language.
func languageQuery(c *gin.Context) (string, bool) {
	raw := strings.ToLower(strings.TrimSpace(c.Query("language")))
	if raw == "" {
		return catalog.DefaultLanguage, true
	}
	if !validators.IsLangTag(raw) {
		httperr.Abort(c, ErrInvalidLanguage)
		return "", false
	}
	return raw, true
}

// intQuery parses an optional integer query parameter. A present value
// that is not an integer yields invalid.
func intQuery(c *gin.Context, key string, def int, invalid error) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		httperr.Abort(c, invalid)
		return 0, false
	}
	return n, true
}
