package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const genericInternalMessage = "Something went wrong!"

type HTTPError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, message, details string) {
	c.JSON(status, HTTPError{
		Error:   message,
		Details: details,
	})
}

// Abort records err on the context and stops the handler chain. The
// response is written by Middleware.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Respond writes err as {error[, details]}. Details are only exposed in
// development.
func Respond(c *gin.Context, err error, dev bool) {
	kind := KindOf(err)

	message := genericInternalMessage
	var e *Error
	if errors.As(err, &e) && kind != KindInternal {
		message = e.Message
	} else if kind == KindConflict {
		message = "Resource already exists"
	}

	details := ""
	if dev {
		details = err.Error()
	}

	Write(c, kind.Status(), message, details)
}

// Middleware turns the last error attached to the context into the
// response when the handler did not write one itself.
func Middleware(logger zerolog.Logger, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		kind := KindOf(err)

		if kind == KindInternal {
			logger.Error().
				Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("request failed")
		}

		if c.Writer.Written() {
			return
		}

		Respond(c, err, dev)
	}
}
