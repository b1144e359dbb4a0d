package analytics

import (
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

var skipPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/healthz"}

// Tracked reports whether a request to path counts as a page view. Paths
// with a file extension are assets, wherever they are routed.
func Tracked(p string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(p, prefix) {
			return false
		}
	}
	return path.Ext(p) == ""
}

// Middleware records successful GET page views. Requests sending DNT: 1 are
// never recorded. Storage errors are logged and never fail the request.
func Middleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !Tracked(path) {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := store.Record(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), path); err != nil {
			log.Printf("Error recording visitor: %v", err)
		}
	}
}
