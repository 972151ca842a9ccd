package handlers

import (
	"net/http"
	"time"

	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API on group.
func RegisterRoutes(api *gin.RouterGroup, site *services.Site) {
	homeHandler := NewHomeHandler(site)
	eventHandler := NewEventHandler(site)
	galleryHandler := NewGalleryHandler(site)
	contentHandler := NewContentHandler(site)
	feedbackHandler := NewFeedbackHandler(site)
	bookmarkHandler := NewBookmarkHandler(site)
	adminHandler := NewAdminHandler(site)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now(),
		})
	})

	api.GET("/home", homeHandler.GetHome)

	// Events
	api.GET("/events", eventHandler.GetEvents)
	api.GET("/events/:id", eventHandler.GetEvent)

	// Gallery
	api.GET("/gallery", galleryHandler.GetGallery)
	api.GET("/gallery/:id", galleryHandler.GetGalleryItem)

	api.GET("/contacts", contentHandler.GetContacts)
	api.GET("/about", contentHandler.GetAbout)

	// Feedback
	api.GET("/feedback/events", feedbackHandler.GetFeedbackEvents)
	api.POST("/feedback", feedbackHandler.SubmitFeedback)

	// Bookmarks
	api.GET("/bookmarks", bookmarkHandler.GetBookmarkedItems)
	api.DELETE("/bookmarks", bookmarkHandler.ClearBookmarks)
	api.GET("/bookmarks/:kind", bookmarkHandler.GetBookmarks)
	api.GET("/bookmarks/:kind/:id", bookmarkHandler.IsBookmarked)
	api.PUT("/bookmarks/:kind/:id", bookmarkHandler.AddBookmark)
	api.DELETE("/bookmarks/:kind/:id", bookmarkHandler.RemoveBookmark)
	api.POST("/bookmarks/:kind/:id/toggle", bookmarkHandler.ToggleBookmark)

	// Data management
	api.GET("/notices", adminHandler.GetNotices)
	api.POST("/cache/invalidate", adminHandler.InvalidateCache)
	api.PUT("/admin/data/:resource", adminHandler.PublishDocument)
}
