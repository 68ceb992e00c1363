package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	eventHTTP "github-activity/internal/event/delivery/http"
	"github-activity/internal/middleware"
	"github-activity/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string

	// Event domain
	eventHandler eventHTTP.Handler
	middleware   middleware.Middleware
	readiness    ReadinessFunc
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Event domain
	EventHandler eventHTTP.Handler
	Middleware   middleware.Middleware
	Readiness    ReadinessFunc // optional; /ready always succeeds when nil
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		corsOrigins:  cfg.AllowedOrigins,
		eventHandler: cfg.EventHandler,
		middleware:   cfg.Middleware,
		readiness:    cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventHandler == nil {
		return errors.New("event handler is required")
	}
	return nil
}
