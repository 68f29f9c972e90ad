package search

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Agg *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{Agg: agg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/search", h.search)
}

type searchReq struct {
	Query   string `json:"query"`
	Version string `json:"version"`
	Book    string `json:"book"`
}

func (h *Handler) search(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if utf8.RuneCountInString(req.Query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Query must be at least 2 characters",
		})
		return
	}
	if req.Version == "" {
		req.Version = "es-rvr1960"
	}

	results := h.Agg.Search(c.Request.Context(), req.Query, req.Version, req.Book)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"query":   req.Query,
		"version": req.Version,
		"book":    req.Book,
		"count":   len(results),
	})
}
