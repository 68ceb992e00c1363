package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github-activity/pkg/response"
)

// HeaderSignature carries the HMAC-SHA256 of the raw body.
const HeaderSignature = "X-Hub-Signature-256"

// LimitBody caps the request body at n bytes. Reading past the cap fails.
func (m Middleware) LimitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

// VerifyGitHubSignature rejects deliveries whose signature does not match the
// configured secret. The body is restored for the next handler.
func (m Middleware) VerifyGitHubSignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.security.SignatureRequired() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			m.l.Warnf(ctx, "middleware.VerifyGitHubSignature: read body: %v", err)
			response.BadRequest(c)
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if err := m.security.ValidateGitHubSignature(body, c.GetHeader(HeaderSignature)); err != nil {
			m.l.Warnf(ctx, "middleware.VerifyGitHubSignature: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AllowIPs rejects callers outside the configured allowlist.
func (m Middleware) AllowIPs() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.security.ValidateIPAddress(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.AllowIPs: %v", err)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimit throttles requests sharing source.
func (m Middleware) RateLimit(source string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.security.CheckRateLimit(source); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
