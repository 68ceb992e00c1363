package httpserver

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

// registerDashboard serves the activity page at /ui and its assets under /static.
func (srv HTTPServer) registerDashboard() error {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("httpserver: static assets: %w", err)
	}

	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return fmt.Errorf("httpserver: dashboard page: %w", err)
	}

	srv.gin.GET("/ui", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	srv.gin.StaticFS("/static", http.FS(assets))
	return nil
}
