package http

import (
	"github.com/gin-gonic/gin"

	"github-activity/internal/middleware"
	"github-activity/internal/model"
	"github-activity/internal/webhook"
)

// RegisterRoutes maps the webhook and events endpoints.
// Only deliveries that pass the signature check count against the rate limit.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.POST("/webhook/receiver",
		mw.LimitBody(webhook.MaxPayloadBytes),
		mw.AllowIPs(),
		mw.VerifyGitHubSignature(),
		mw.RateLimit(string(model.SourceGitHub)),
		h.Receive,
	)
	r.GET("/events", h.List)
}
