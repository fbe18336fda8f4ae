package http

import (
	"github.com/gin-gonic/gin"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/internal/analysis/highlight"
	"vendor-message-analysis/pkg/response"
)

// AnalyzeMessage godoc
// @Summary     Analyze a vendor message
// @Description Extracts new todos, updates and completions from a vendor message. Falls back to keyword rules when the analysis service fails.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Message and planning context"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/analysis/messages/analyze [POST]
func (h *handler) AnalyzeMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	result, err := h.uc.AnalyzeMessage(ctx, req.toContext())
	if err != nil {
		h.l.Warnf(ctx, "uc.AnalyzeMessage: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(req.MessageContent, result))
}

// Highlights godoc
// @Summary     Compute highlight ranges
// @Description Maps the source texts of an analysis result onto the message. Items whose source text is missing from the message are skipped.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body highlightsReq true "Message and analysis result"
// @Success     200  {object} highlightsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/analysis/highlights [POST]
func (h *handler) Highlights(c *gin.Context) {
	req, err := h.processHighlightsReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	ranges := highlight.Ranges(req.MessageContent, req.Analysis.toResult())
	response.OK(c, highlightsResp{Highlights: newRangesResp(ranges)})
}

// ClearAllCache godoc
// @Summary     Clear the analysis cache
// @Tags        Analysis
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/analysis/cache [DELETE]
func (h *handler) ClearAllCache(c *gin.Context) {
	h.uc.ClearAllCache()
	h.l.Infof(c.Request.Context(), "analysis cache cleared")
	response.OK(c, nil)
}

// ClearContactCache godoc
// @Summary     Clear cached analyses for one contact
// @Tags        Analysis
// @Produce     json
// @Param       contact_id path string true "Contact ID"
// @Success     200 {object} clearCacheResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/analysis/cache/contacts/{contact_id} [DELETE]
func (h *handler) ClearContactCache(c *gin.Context) {
	contactID := c.Param("contact_id")
	if contactID == "" {
		h.mapError(c, analysis.ErrEmptyContactID)
		return
	}

	removed := h.uc.ClearContactCache(contactID)
	response.OK(c, clearCacheResp{ContactID: contactID, Removed: removed})
}
