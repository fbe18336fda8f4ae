package http

import (
	"github.com/gin-gonic/gin"

	"vendor-message-analysis/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that may reach the analysis service are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/messages/analyze", mw.RateLimit(), h.AnalyzeMessage)
	rg.POST("/highlights", h.Highlights)

	cache := rg.Group("/cache")
	{
		cache.DELETE("", h.ClearAllCache)
		cache.DELETE("/contacts/:contact_id", h.ClearContactCache)
	}

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/analyze", mw.RateLimit(), h.SessionAnalyze)
		sessions.GET("/:id/summary", h.SessionSummary)
		sessions.POST("/:id/highlights", h.SessionHighlights)
		sessions.DELETE("/:id/analysis", h.ClearSessionAnalysis)
		sessions.DELETE("/:id/cache/contacts/:contact_id", h.ClearSessionContactCache)
		sessions.DELETE("/:id", h.DeleteSession)
	}
}
