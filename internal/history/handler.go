package history

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biblealive/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/version-history", h.list)
	rg.POST("/version-history", h.add)
	rg.PUT("/version-history", h.update)
	rg.DELETE("/version-history", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	userID := c.DefaultQuery("userId", "default")

	entries, err := h.Repo.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "list failed"})
		return
	}

	favorites := make([]string, 0)
	for _, e := range entries {
		if e.Favorite {
			favorites = append(favorites, e.VersionID)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": gin.H{
			"userId":           userID,
			"recentVersions":   entries,
			"favoriteVersions": favorites,
		},
	})
}

type addReq struct {
	VersionID   string `json:"versionId"`
	VersionName string `json:"versionName"`
	Lang        string `json:"lang"`
	UserID      string `json:"userId"`
}

func (h *Handler) add(c *gin.Context) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	req.VersionID = strings.TrimSpace(req.VersionID)
	if req.VersionID == "" || req.VersionName == "" || req.Lang == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "versionId, versionName, and lang are required",
		})
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	entry := models.VersionHistoryEntry{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		VersionID: req.VersionID,
		Name:      req.VersionName,
		Lang:      req.Lang,
	}

	if err := h.Repo.Touch(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "save failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Version added to history",
		"entry":   entry,
	})
}

type updateReq struct {
	VersionID string `json:"versionId"`
	Favorite  *bool  `json:"favorite"`
	UserID    string `json:"userId"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	if strings.TrimSpace(req.VersionID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "versionId is required"})
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}
	favorite := req.Favorite != nil && *req.Favorite

	ok, err := h.Repo.SetFavorite(c.Request.Context(), req.UserID, req.VersionID, favorite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "update failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Version history updated",
	})
}

type deleteReq struct {
	VersionID string `json:"versionId"`
	UserID    string `json:"userId"`
}

func (h *Handler) remove(c *gin.Context) {
	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	if strings.TrimSpace(req.VersionID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "versionId is required"})
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	if _, err := h.Repo.Delete(c.Request.Context(), req.UserID, req.VersionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Version removed from history",
		"versionId": req.VersionID,
	})
}
