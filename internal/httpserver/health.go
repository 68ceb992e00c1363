package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github-activity/pkg/response"
)

// Health response constants.
const (
	HealthMessage = "GitHub webhook receiver"
	HealthVersion = "1.0.0"
	ServiceName   = "github-activity"

	readinessTimeout = 2 * time.Second
)

// ReadinessFunc reports whether a dependency can serve traffic.
type ReadinessFunc func(ctx context.Context) error

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newHealthResp(status string) healthResp {
	return healthResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready when the event store answers a one-row read.
// @Summary Readiness Check
// @Description Check if the API and its event store are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Failure 503 {object} healthResp "Event store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.readiness != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		if err := srv.readiness(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, newHealthResp("not ready"))
			return
		}
	}
	response.OK(c, newHealthResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
