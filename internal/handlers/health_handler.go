package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/httpresp"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(isoMillis),
	})
}
