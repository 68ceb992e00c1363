package http

import (
	"github.com/gin-gonic/gin"

	"github-activity/pkg/log"
	"github-activity/pkg/response"
)

// Receive godoc
// @Summary     Receive a GitHub webhook
// @Description Normalizes push, pull request opened and pull request merged deliveries and stores one record. Other deliveries are acknowledged and ignored.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event      header string false "GitHub event name (push, pull_request)"
// @Param       X-GitHub-Delivery   header string false "GitHub delivery GUID"
// @Param       X-Hub-Signature-256 header string false "HMAC-SHA256 of the body, required when a secret is configured"
// @Param       body body object true "GitHub webhook payload"
// @Success     201 {object} response.Resp "Event stored successfully"
// @Success     200 {object} response.Resp "Event received but ignored"
// @Failure     400 {object} response.Resp "Invalid payload"
// @Failure     401 {object} response.Resp "Invalid signature"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /webhook/receiver [POST]
func (h *handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReceiveReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processReceiveReq: %v", err)
		h.mapError(c, err)
		return
	}

	ctx = log.WithDeliveryID(ctx, req.DeliveryID)
	output, err := h.uc.Receive(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Receive: %v", err)
		h.mapError(c, err)
		return
	}

	if !output.Stored {
		response.Ignored(c)
		return
	}
	response.Created(c)
}

// List godoc
// @Summary     List recent events
// @Description Returns the most recently received events, newest first.
// @Tags        Events
// @Produce     json
// @Param       limit query int false "Number of events (1-100, default 10)"
// @Success     200 {array}  eventResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListReq(c)

	output, err := h.uc.ListRecent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRecent: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
