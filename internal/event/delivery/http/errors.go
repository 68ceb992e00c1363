package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github-activity/internal/webhook"
	"github-activity/pkg/response"
)

// mapError writes the HTTP response for a domain or use-case error.
// Store failures and anything unrecognized are internal errors.
func (h *handler) mapError(c *gin.Context, err error) {
	if errors.Is(err, webhook.ErrInvalidPayload) {
		response.BadRequest(c)
		return
	}
	response.InternalError(c, err)
}
