package annotations

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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

// RegisterRoutes exposes one list/create/delete triple per annotation kind.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	for path, kind := range map[string]string{
		"/bookmarks":  models.KindBookmark,
		"/highlights": models.KindHighlight,
		"/notes":      models.KindNote,
	} {
		rg.GET(path, h.list(kind))
		rg.POST(path, h.create(kind))
		rg.DELETE(path+"/:id", h.remove(kind))
	}
}

type createReq struct {
	DeviceID  string `json:"device_id"`
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Reference string `json:"reference"`
	// note text or highlight color; unused for bookmarks
	Payload string `json:"payload"`
}

func (h *Handler) create(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
			return
		}

		req.Reference = strings.TrimSpace(req.Reference)
		if req.Reference == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "reference required"})
			return
		}
		if req.DeviceID == "" {
			req.DeviceID = "default"
		}

		a := models.Annotation{
			ID:        uuid.NewString(),
			DeviceID:  req.DeviceID,
			Kind:      kind,
			Book:      strings.TrimSpace(req.Book),
			Chapter:   req.Chapter,
			Verse:     req.Verse,
			Reference: req.Reference,
			Payload:   req.Payload,
			CreatedAt: time.Now().UTC(),
		}

		if err := h.Repo.Create(c.Request.Context(), a); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "save failed"})
			return
		}

		h.Hub.BroadcastJSON(synchub.Event{
			Type:     "annotation_created",
			DeviceID: a.DeviceID,
			Payload:  a,
		})

		c.JSON(http.StatusOK, gin.H{"success": true, "id": a.ID, "annotation": a})
	}
}

func (h *Handler) list(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.DefaultQuery("device_id", "default")
		limit := parseInt(c.Query("limit"), 50)
		offset := parseInt(c.Query("offset"), 0)

		items, err := h.Repo.List(c.Request.Context(), deviceID, kind, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "list failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, kind + "s": items, "count": len(items)})
	}
}

func (h *Handler) remove(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.DefaultQuery("device_id", "default")
		id := c.Param("id")

		ok, err := h.Repo.Delete(c.Request.Context(), deviceID, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "delete failed"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
			return
		}

		h.Hub.BroadcastJSON(synchub.Event{
			Type:     "annotation_deleted",
			DeviceID: deviceID,
			Payload:  gin.H{"id": id, "kind": kind},
		})

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
	}
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
