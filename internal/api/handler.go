// Package api exposes the HTTP surface: browse aggregated items, manage the
// hidden set and source toggles, and trigger post generation.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/internal/generate"
	"github.com/spryker-community/echo/internal/notify"
	"github.com/spryker-community/echo/internal/sources"
	"github.com/spryker-community/echo/internal/state"
	"github.com/spryker-community/echo/pkg/logging"
	"github.com/spryker-community/echo/pkg/version"
)

type Handler struct {
	Aggregator   *sources.Aggregator
	Store        *state.Store
	Orchestrator *generate.Orchestrator
	Publisher    notify.Publisher
	Logger       logging.Logger
}

func NewHandler(aggregator *sources.Aggregator, store *state.Store, orchestrator *generate.Orchestrator, publisher notify.Publisher, logger logging.Logger) *Handler {
	return &Handler{
		Aggregator:   aggregator,
		Store:        store,
		Orchestrator: orchestrator,
		Publisher:    publisher,
		Logger:       logger,
	}
}

func RegisterRoutes(router gin.IRoutes, handler *Handler) {
	router.GET("/items", handler.HandleListItems)
	router.POST("/items/:id/hide", handler.HandleHideItem)
	router.DELETE("/items/:id/hide", handler.HandleUnhideItem)
	router.GET("/sources", handler.HandleListSources)
	router.PUT("/sources/:source", handler.HandleSetSource)
	router.POST("/generate", handler.HandleGeneratePost)
	router.POST("/drafts/email", handler.HandleEmailDraft)
	router.GET("/version", handler.HandleVersion)
}

// HandleListItems returns the merged feed, newest first, hidden items
// filtered out. A single source can be requested with ?source=, in which case
// fetch errors propagate instead of being absorbed by the aggregator.
func (h *Handler) HandleListItems(c *gin.Context) {
	if requested := c.Query("source"); requested != "" {
		h.listSingleSource(c, content.Source(requested))
		return
	}

	enabled, err := h.Store.EnabledSources(c.Request.Context())
	if err != nil {
		h.Logger.WithFields(logging.Fields{"error": err.Error()}).Error("Failed to load source settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load source settings"})
		return
	}

	items := h.Aggregator.FetchAll(c.Request.Context(), enabled)

	hidden, err := h.Store.HiddenItems(c.Request.Context())
	if err != nil {
		h.Logger.WithFields(logging.Fields{"error": err.Error()}).Error("Failed to load hidden items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load hidden items"})
		return
	}

	visible := make([]content.ContentItem, 0, len(items))
	for _, item := range items {
		if hidden[item.ID] {
			continue
		}
		visible = append(visible, item)
	}

	c.JSON(http.StatusOK, gin.H{"items": visible, "count": len(visible)})
}

func (h *Handler) listSingleSource(c *gin.Context, requested content.Source) {
	for _, adapter := range h.Aggregator.Adapters() {
		if adapter.Source() != requested {
			continue
		}
		items, err := adapter.Fetch(c.Request.Context())
		if err != nil {
			if strings.Contains(err.Error(), sources.QuotaExceededMarker) {
				c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error(), "code": "quota_exceeded"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		content.SortByDateDesc(items)
		c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "unknown source"})
}

func (h *Handler) HandleHideItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.HideItem(c.Request.Context(), id); err != nil {
		h.Logger.WithFields(logging.Fields{"item_id": id, "error": err.Error()}).Error("Failed to hide item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hide item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hidden": true, "id": id})
}

func (h *Handler) HandleUnhideItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.UnhideItem(c.Request.Context(), id); err != nil {
		h.Logger.WithFields(logging.Fields{"item_id": id, "error": err.Error()}).Error("Failed to unhide item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unhide item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hidden": false, "id": id})
}

func (h *Handler) HandleListSources(c *gin.Context) {
	enabled, err := h.Store.EnabledSources(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load source settings"})
		return
	}

	type sourceStatus struct {
		Source  content.Source `json:"source"`
		Enabled bool           `json:"enabled"`
	}
	statuses := make([]sourceStatus, 0, len(content.Sources))
	for _, source := range content.Sources {
		statuses = append(statuses, sourceStatus{Source: source, Enabled: enabled[source]})
	}
	c.JSON(http.StatusOK, gin.H{"sources": statuses})
}

type setSourceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *Handler) HandleSetSource(c *gin.Context) {
	source := content.Source(c.Param("source"))
	known := false
	for _, s := range content.Sources {
		if s == source {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown source"})
		return
	}

	var req setSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := h.Store.SetSourceEnabled(c.Request.Context(), source, *req.Enabled); err != nil {
		h.Logger.WithFields(logging.Fields{"source": source, "error": err.Error()}).Error("Failed to update source setting")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update source setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"source": source, "enabled": *req.Enabled})
}

// HandleGeneratePost runs the generation pipeline for the posted item. The
// item travels in the request body so regeneration works without the server
// holding feed state.
func (h *Handler) HandleGeneratePost(c *gin.Context) {
	var item content.ContentItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if item.ID == "" || item.Source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id and source are required"})
		return
	}

	post, err := h.Orchestrator.Generate(c.Request.Context(), item)
	if err != nil {
		h.Logger.WithFields(logging.Fields{"item_id": item.ID, "error": err.Error()}).Error("Post generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// HandleEmailDraft mails a previously generated post to the configured
// reviewer. A missing SMTP setup is not an error; the publisher skips.
func (h *Handler) HandleEmailDraft(c *gin.Context) {
	var post content.GeneratedPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if post.Content == "" || post.SourceItem.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post content and source item are required"})
		return
	}

	if err := h.Publisher.Publish(c.Request.Context(), post); err != nil {
		h.Logger.WithFields(logging.Fields{"item_id": post.SourceItem.ID, "error": err.Error()}).Error("Draft email failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send draft email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accepted": true})
}

func (h *Handler) HandleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, version.GetInfo())
}
