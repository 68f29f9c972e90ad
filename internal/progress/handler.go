package progress

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"biblealive/internal/bible"
	synchub "biblealive/internal/sync"
	"biblealive/pkg/models"
)

type Handler struct {
	Repo *Repo
	Hub  *synchub.Hub
}

func NewHandler(repo *Repo, hub *synchub.Hub) *Handler {
	return &Handler{Repo: repo, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/progress", h.list)
	rg.PUT("/progress", h.upsert)
}

type upsertReq struct {
	UserID  string `json:"user_id"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Version string `json:"version"`
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	req.Book = strings.TrimSpace(req.Book)
	if req.Book == "" || req.Version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "book and version required"})
		return
	}
	if req.Chapter < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "chapter must be >= 1"})
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	p := models.ReadingProgress{
		UserID:    req.UserID,
		Book:      bible.Normalize(req.Book),
		Chapter:   req.Chapter,
		Version:   req.Version,
		UpdatedAt: time.Now().UTC(),
	}

	if err := h.Repo.Upsert(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "save failed"})
		return
	}

	h.Hub.BroadcastJSON(synchub.Event{
		Type:     "progress_updated",
		DeviceID: p.UserID,
		Payload:  p,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "progress": p})
}

func (h *Handler) list(c *gin.Context) {
	userID := c.DefaultQuery("user_id", "default")
	limit := parseInt(c.Query("limit"), 20)

	items, err := h.Repo.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "progress": items, "count": len(items)})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
