package http

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github-activity/internal/webhook"
)

// GitHub delivery headers.
const (
	HeaderEvent    = "X-GitHub-Event"
	HeaderDelivery = "X-GitHub-Delivery"
)

// processReceiveReq reads the raw body and the GitHub headers. The body is
// kept raw so unknown fields and types never fail the request.
func (h *handler) processReceiveReq(c *gin.Context) (receiveReq, error) {
	var req receiveReq

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return req, fmt.Errorf("%w: read body: %v", webhook.ErrInvalidPayload, err)
	}

	req.Payload, err = webhook.ParsePayload(body)
	if err != nil {
		return req, err
	}

	req.EventType = c.GetHeader(HeaderEvent)
	req.DeliveryID = c.GetHeader(HeaderDelivery)
	if req.DeliveryID == "" {
		req.DeliveryID = uuid.NewString()
	}
	return req, nil
}

// processListReq reads the optional limit. Malformed values fall back to
// the default.
func (h *handler) processListReq(c *gin.Context) listReq {
	var req listReq
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			req.Limit = n
		}
	}
	return req
}
