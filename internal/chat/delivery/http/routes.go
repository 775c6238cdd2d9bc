package http

import (
	"github.com/gin-gonic/gin"

	"enterprise-advisors/internal/middleware"
)

// MapRoutes registers the chat domain routes on the given group.
func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.ProcessChat)
	r.GET("/artifacts/raw", h.DownloadRaw)
	r.GET("/artifacts/:id", h.GetArtifact)
}
