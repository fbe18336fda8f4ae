package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"vendor-message-analysis/internal/analysis/session"
)

// processAnalyzeReq binds and validates an analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, req.validate()
}

// processHighlightsReq binds a stateless highlight request body.
func (h *handler) processHighlightsReq(c *gin.Context) (highlightsReq, error) {
	var req highlightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, nil
}

// processSessionHighlightsReq binds a session highlight request body.
func (h *handler) processSessionHighlightsReq(c *gin.Context) (sessionHighlightsReq, error) {
	var req sessionHighlightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if req.Offset != nil && *req.Offset < 0 {
		return req, errInvalidOffset
	}
	return req, nil
}

// processSession resolves the :id URI param into a live session.
func (h *handler) processSession(c *gin.Context) (*session.Session, error) {
	id := c.Param("id")
	if id == "" {
		return nil, errEmptySessionID
	}
	return h.sessions.Get(id)
}
