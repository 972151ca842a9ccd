package handlers

import (
	"campusconnect-api/models"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	site *services.Site
}

func NewContentHandler(site *services.Site) *ContentHandler {
	return &ContentHandler{site: site}
}

type ContactsPage struct {
	Faculty  []models.Contact `json:"faculty"`
	Students []models.Contact `json:"students"`
	College  any              `json:"college,omitempty"`
}

func (h *ContentHandler) GetContacts(c *gin.Context) {
	doc, res := h.site.Loader.Contacts(c.Request.Context())

	page := ContactsPage{
		Faculty:  nonNil(doc.Faculty()),
		Students: nonNil(doc.StudentContacts()),
	}
	if doc.Contacts != nil && len(doc.Contacts.College) > 0 {
		page.College = doc.Contacts.College
	}

	respondData(c, page, res)
}

// GetAbout returns the about page sections as published.
func (h *ContentHandler) GetAbout(c *gin.Context) {
	doc, res := h.site.Loader.About(c.Request.Context())
	respondData(c, doc, res)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
