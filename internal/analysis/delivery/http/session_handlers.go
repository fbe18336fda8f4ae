package http

import (
	"github.com/gin-gonic/gin"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/pkg/response"
)

// CreateSession godoc
// @Summary     Start an analysis session
// @Description A session holds the last analysis shown to one user and discards results that arrive after it is superseded or deleted.
// @Tags        Sessions
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/analysis/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	h.l.Debugf(c.Request.Context(), "analysis session %s created", s.ID())
	response.OK(c, newSessionResp(s.State()))
}

// GetSession godoc
// @Summary     Get session state
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	s, err := h.processSession(c)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newSessionResp(s.State()))
}

// SessionAnalyze godoc
// @Summary     Analyze a message within a session
// @Description Supersedes any analysis still running in the session. On a hard failure the session error is set and last_analysis is unchanged.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body analyzeReq true "Message and planning context"
// @Success     200  {object} sessionAnalyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/sessions/{id}/analyze [POST]
func (h *handler) SessionAnalyze(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.processSession(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	s.AnalyzeMessage(ctx, req.toContext())

	response.OK(c, sessionAnalyzeResp{
		Session:    newSessionResp(s.State()),
		Summary:    newSummaryResp(s.Summary()),
		Highlights: newRangesResp(s.HighlightedRanges(req.MessageContent)),
	})
}

// SessionSummary godoc
// @Summary     Summarize the session's last analysis
// @Description Returns null data when no analysis has run.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/sessions/{id}/summary [GET]
func (h *handler) SessionSummary(c *gin.Context) {
	s, err := h.processSession(c)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newSummaryResp(s.Summary()))
}

// SessionHighlights godoc
// @Summary     Highlight ranges for the session's last analysis
// @Description With offset set, only the ranges covering that byte offset are returned.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string               true "Session ID"
// @Param       body body sessionHighlightsReq true "Displayed message"
// @Success     200  {object} highlightsResp
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/sessions/{id}/highlights [POST]
func (h *handler) SessionHighlights(c *gin.Context) {
	s, err := h.processSession(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	req, err := h.processSessionHighlightsReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	if req.Offset != nil {
		response.OK(c, highlightsResp{Highlights: newRangesResp(s.RangesAt(req.MessageContent, *req.Offset))})
		return
	}
	response.OK(c, highlightsResp{Highlights: newRangesResp(s.HighlightedRanges(req.MessageContent))})
}

// ClearSessionAnalysis godoc
// @Summary     Forget the session's last analysis
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/sessions/{id}/analysis [DELETE]
func (h *handler) ClearSessionAnalysis(c *gin.Context) {
	s, err := h.processSession(c)
	if err != nil {
		h.mapError(c, err)
		return
	}
	s.ClearAnalysis()
	response.OK(c, newSessionResp(s.State()))
}

// ClearSessionContactCache godoc
// @Summary     Clear cached analyses for one contact through a session
// @Description Also forgets the session's last analysis when it came from that contact.
// @Tags        Sessions
// @Produce     json
// @Param       id         path string true "Session ID"
// @Param       contact_id path string true "Contact ID"
// @Success     200 {object} sessionClearCacheResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/sessions/{id}/cache/contacts/{contact_id} [DELETE]
func (h *handler) ClearSessionContactCache(c *gin.Context) {
	s, err := h.processSession(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	contactID := c.Param("contact_id")
	if contactID == "" {
		h.mapError(c, analysis.ErrEmptyContactID)
		return
	}

	removed := s.ClearContactCache(contactID)
	response.OK(c, sessionClearCacheResp{
		ContactID: contactID,
		Removed:   removed,
		Session:   newSessionResp(s.State()),
	})
}

// DeleteSession godoc
// @Summary     End a session
// @Description Cancels in-flight analysis; late results are discarded.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, nil)
}
