package handlers

import (
	"net/http"

	"campusconnect-api/middleware"
	"campusconnect-api/models"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	site *services.Site
}

func NewBookmarkHandler(site *services.Site) *BookmarkHandler {
	return &BookmarkHandler{site: site}
}

func (h *BookmarkHandler) target(c *gin.Context) (models.BookmarkKind, int, bool) {
	kind, err := models.ParseBookmarkKind(c.Param("kind"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "bookmark kind must be events or gallery", err)
		return "", 0, false
	}
	id, ok := paramID(c)
	return kind, id, ok
}

// GetBookmarkedItems returns the session's bookmarked events and gallery
// items that still exist in the loaded collections.
func (h *BookmarkHandler) GetBookmarkedItems(c *gin.Context) {
	items := h.site.BookmarkedItems(c.Request.Context(), middleware.SessionID(c))
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetBookmarks returns bookmarked ids of one kind in insertion order.
func (h *BookmarkHandler) GetBookmarks(c *gin.Context) {
	kind, err := models.ParseBookmarkKind(c.Param("kind"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "bookmark kind must be events or gallery", err)
		return
	}
	ids := h.site.Bookmarks.GetBookmarks(c.Request.Context(), middleware.SessionID(c), kind)
	c.JSON(http.StatusOK, gin.H{"data": ids})
}

func (h *BookmarkHandler) IsBookmarked(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}
	bookmarked := h.site.Bookmarks.IsBookmarked(c.Request.Context(), middleware.SessionID(c), kind, id)
	c.JSON(http.StatusOK, models.BookmarkState{Kind: kind, ID: id, Bookmarked: bookmarked})
}

func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}
	if err := h.site.Bookmarks.AddBookmark(c.Request.Context(), middleware.SessionID(c), kind, id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to add bookmark", err)
		return
	}
	c.JSON(http.StatusOK, models.BookmarkState{Kind: kind, ID: id, Bookmarked: true})
}

func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}
	if err := h.site.Bookmarks.RemoveBookmark(c.Request.Context(), middleware.SessionID(c), kind, id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to remove bookmark", err)
		return
	}
	c.JSON(http.StatusOK, models.BookmarkState{Kind: kind, ID: id, Bookmarked: false})
}

// ToggleBookmark flips a bookmark and returns the new state.
func (h *BookmarkHandler) ToggleBookmark(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}
	bookmarked, err := h.site.Bookmarks.ToggleBookmark(c.Request.Context(), middleware.SessionID(c), kind, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to toggle bookmark", err)
		return
	}
	c.JSON(http.StatusOK, models.BookmarkState{Kind: kind, ID: id, Bookmarked: bookmarked})
}

func (h *BookmarkHandler) ClearBookmarks(c *gin.Context) {
	if err := h.site.Bookmarks.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear bookmarks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "bookmarks cleared",
	})
}
