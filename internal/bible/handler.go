package bible

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// catalogCacheControl mirrors the CDN cache policy for static catalogs:
// 24h fresh, 12h stale-while-revalidate.
const catalogCacheControl = "s-maxage=86400, stale-while-revalidate=43200"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.books)
	rg.GET("/versions", h.versions)
	rg.GET("/reading-plans", h.plans)
}

func (h *Handler) books(c *gin.Context) {
	c.Header("Cache-Control", catalogCacheControl)
	c.JSON(http.StatusOK, gin.H{"success": true, "books": Books})
}

func (h *Handler) versions(c *gin.Context) {
	c.Header("Cache-Control", catalogCacheControl)
	c.JSON(http.StatusOK, gin.H{"success": true, "versions": Versions})
}

func (h *Handler) plans(c *gin.Context) {
	c.Header("Cache-Control", catalogCacheControl)
	c.JSON(http.StatusOK, gin.H{"success": true, "plans": Plans})
}
