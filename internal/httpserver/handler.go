package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "github-activity/internal/event/delivery/http"
	"github-activity/internal/middleware"
)

// RootMessage is the plain-text body of GET /.
const RootMessage = "GitHub Webhook Receiver is Running"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDashboard(); err != nil {
		return err
	}

	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.Logger())
	srv.gin.Use(middleware.CORS(srv.corsOrigins))

	srv.l.Infof(context.Background(), "CORS mode: %s, origins %v", srv.environment, srv.corsOrigins)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	eventHTTP.RegisterRoutes(srv.gin, srv.eventHandler, srv.middleware)
	srv.l.Infof(context.Background(), "Event routes registered at POST /webhook/receiver and GET /events")
}

// root godoc
// @Summary     Service banner
// @Tags        Health
// @Produce     plain
// @Success     200 {string} string "GitHub Webhook Receiver is Running"
// @Router      / [get]
func (srv HTTPServer) root(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}
