package handlers

import (
	"errors"
	"io"
	"net/http"

	"campusconnect-api/models"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const maxDocumentSize = 4 << 20

type AdminHandler struct {
	site *services.Site
}

func NewAdminHandler(site *services.Site) *AdminHandler {
	return &AdminHandler{site: site}
}

// GetNotices lists data resources whose last load failed.
func (h *AdminHandler) GetNotices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.site.Loader.Notices()})
}

// InvalidateCache drops one cached document (?resource=) or all of them.
func (h *AdminHandler) InvalidateCache(c *gin.Context) {
	resource := c.Query("resource")
	if resource == "" {
		h.site.Loader.Flush()
		c.JSON(http.StatusOK, gin.H{
			"message": "cache invalidated successfully",
		})
		return
	}

	kind, err := models.ParseResourceKind(resource)
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown resource", err)
		return
	}
	h.site.Loader.Invalidate(kind)
	c.JSON(http.StatusOK, gin.H{
		"message":  "cache invalidated successfully",
		"resource": kind,
	})
}

// PublishDocument validates and stores a replacement data document, then
// drops its cache entry so the next read fetches it.
func (h *AdminHandler) PublishDocument(c *gin.Context) {
	if h.site.Publisher == nil {
		respondError(c, http.StatusNotImplemented, "data source is read-only", nil)
		return
	}

	kind, err := models.ParseResourceKind(c.Param("resource"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "unknown resource", err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "document too large", err)
			return
		}
		respondError(c, http.StatusBadRequest, "failed to read document", err)
		return
	}

	if err := services.ValidateDocument(kind, body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid document", err)
		return
	}

	if err := h.site.Publisher.Publish(c.Request.Context(), kind.Path(), body); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to publish document", err)
		return
	}
	h.site.Loader.Invalidate(kind)

	log.WithField("resource", kind).Info("data document published")
	c.JSON(http.StatusOK, gin.H{
		"message":  "document published",
		"resource": kind,
	})
}
