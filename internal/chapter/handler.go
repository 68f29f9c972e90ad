package chapter

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"biblealive/internal/provider"
)

type Handler struct {
	Resolver *provider.Resolver
}

func NewHandler(resolver *provider.Resolver) *Handler {
	return &Handler{Resolver: resolver}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chapter-improved", h.get)
}

func (h *Handler) get(c *gin.Context) {
	book := strings.TrimSpace(c.Query("book"))
	chapterStr := strings.TrimSpace(c.Query("chapter"))
	version := c.DefaultQuery("version", "en-kjv")

	if book == "" || chapterStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Book and chapter parameters are required",
		})
		return
	}

	chapterNum, err := strconv.Atoi(chapterStr)
	if err != nil || chapterNum < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Chapter must be a positive number",
		})
		return
	}

	ch, err := h.Resolver.FetchChapter(c.Request.Context(), book, chapterNum, version)
	if err != nil {
		if errors.Is(err, provider.ErrSpanishUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   "Spanish Bible versions temporarily unavailable",
				"message": "Las versiones de la Biblia en español no están disponibles temporalmente. Inténtelo más tarde.",
				"code":    http.StatusServiceUnavailable,
			})
			return
		}
		log.Printf("[chapter] fetch %s %d (%s): %v", book, chapterNum, version, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	// 1h fresh, 30m stale: chapters change only when upstreams do
	c.Header("Cache-Control", "s-maxage=3600, stale-while-revalidate=1800")
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"book":        book,
		"chapter":     chapterNum,
		"version":     version,
		"verses":      ch.Verses,
		"totalVerses": len(ch.Verses),
		"apiSource":   ch.Source,
	})
}
