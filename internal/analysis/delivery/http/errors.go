package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/pkg/response"
)

var (
	errInvalidBody        = errors.New("invalid request body")
	errInvalidWeddingDate = errors.New("wedding_context.wedding_date must be YYYY-MM-DD")
	errEmptySessionID     = errors.New("session id is required")
	errInvalidOffset      = errors.New("offset must not be negative")
)

// mapError writes the HTTP response for a domain error.
func (h *handler) mapError(c *gin.Context, err error) {
	var valErr *analysis.ValidationError
	switch {
	case errors.Is(err, analysis.ErrSessionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, analysis.ErrEmptyContactID),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errInvalidWeddingDate),
		errors.Is(err, errEmptySessionID),
		errors.Is(err, errInvalidOffset),
		errors.As(err, &valErr):
		response.Error(c, err, nil)
	case errors.Is(err, analysis.ErrCanceled):
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "analysis canceled",
		})
	default:
		h.l.Errorf(c.Request.Context(), "analysis.delivery.http: unexpected error: %v", err)
		response.InternalError(c, err)
	}
}
