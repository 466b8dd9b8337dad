package middleware

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elyebdri/maurifind/internal/pkg/response"
)

// SPAFallback serves the prebuilt frontend bundle. Paths that match a real
// file are served as-is; every other GET falls back to index.html so the
// client-side router can take over. API and swagger paths never fall through
// to the bundle.
func SPAFallback(webDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/swagger") {
			response.NotFound(c, "Route not found", "NOT_FOUND")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.NotFound(c, "Route not found", "NOT_FOUND")
			return
		}

		file := filepath.Join(webDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		index := filepath.Join(webDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}

		response.NotFound(c, "Route not found", "NOT_FOUND")
	}
}
