package votd

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Selector *Selector
}

func NewHandler(sel *Selector) *Handler {
	return &Handler{Selector: sel}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/verse-of-day", h.get)
}

// get always answers 200: the selector bottoms out on baked-in text.
func (h *Handler) get(c *gin.Context) {
	verse := h.Selector.Select(c.Request.Context(), time.Now())

	c.Header("Cache-Control", "s-maxage=3600, stale-while-revalidate=1800")
	c.JSON(http.StatusOK, gin.H{"success": true, "verse": verse})
}
