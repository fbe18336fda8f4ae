package http

import (
	"github.com/gin-gonic/gin"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/internal/analysis/session"
	"vendor-message-analysis/pkg/log"
)

// Handler is the public interface for the analysis HTTP delivery layer.
type Handler interface {
	AnalyzeMessage(c *gin.Context)
	Highlights(c *gin.Context)
	ClearAllCache(c *gin.Context)
	ClearContactCache(c *gin.Context)

	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	SessionAnalyze(c *gin.Context)
	SessionSummary(c *gin.Context)
	SessionHighlights(c *gin.Context)
	ClearSessionAnalysis(c *gin.Context)
	ClearSessionContactCache(c *gin.Context)
	DeleteSession(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       analysis.UseCase
	sessions *session.Registry
}

// New creates a new HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase, sessions *session.Registry) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
