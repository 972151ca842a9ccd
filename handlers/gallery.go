package handlers

import (
	"fmt"
	"net/http"

	"campusconnect-api/catalog"
	"campusconnect-api/middleware"
	"campusconnect-api/models"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	site *services.Site
}

func NewGalleryHandler(site *services.Site) *GalleryHandler {
	return &GalleryHandler{site: site}
}

type GalleryPage struct {
	Items     []models.GalleryItem `json:"items"`
	Years     []string             `json:"years"`
	Stats     models.GalleryStats  `json:"stats"`
	Bookmarks []int                `json:"bookmarks"`
}

// GetGallery lists gallery items narrowed by ?filter= (a category or an
// academic year such as 2023-24).
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	ctx := c.Request.Context()
	doc, res := h.site.Loader.Gallery(ctx)

	page := GalleryPage{
		Items:     catalog.FilterGallery(doc.Gallery, c.Query("filter")),
		Years:     catalog.GalleryYears(doc.Gallery),
		Stats:     catalog.GalleryStats(doc.Gallery),
		Bookmarks: h.site.Bookmarks.GetBookmarks(ctx, middleware.SessionID(c), models.BookmarkGallery),
	}

	respondData(c, page, res)
}

func (h *GalleryHandler) GetGalleryItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	doc, res := h.site.Loader.Gallery(ctx)
	item, found := catalog.FindGalleryItem(doc.Gallery, id)
	if !found {
		respondError(c, http.StatusNotFound, "gallery item not found", fmt.Errorf("gallery item %d: %w", id, models.ErrNotFound))
		return
	}

	respondData(c, gin.H{
		"item":       item,
		"bookmarked": h.site.Bookmarks.IsBookmarked(ctx, middleware.SessionID(c), models.BookmarkGallery, id),
	}, res)
}
