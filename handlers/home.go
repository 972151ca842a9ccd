package handlers

import (
	"campusconnect-api/catalog"
	"campusconnect-api/models"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	site *services.Site
}

func NewHomeHandler(site *services.Site) *HomeHandler {
	return &HomeHandler{site: site}
}

type HomePage struct {
	NextEvent       *models.Event        `json:"nextEvent"`
	Countdown       *catalog.Countdown   `json:"countdown,omitempty"`
	FeaturedEvent   *models.Event        `json:"featuredEvent"`
	News            []string             `json:"news"`
	FeaturedGallery []models.GalleryItem `json:"featuredGallery"`
}

// GetHome returns the home page blocks: the countdown to the next event,
// this month's featured event, the news ticker and featured photos.
func (h *HomeHandler) GetHome(c *gin.Context) {
	ctx := c.Request.Context()
	events, eventsRes := h.site.Loader.Events(ctx)
	gallery, galleryRes := h.site.Loader.Gallery(ctx)
	now := h.site.Now()

	page := HomePage{
		News:            catalog.NewsUpdates(events.Events, now),
		FeaturedGallery: catalog.FeaturedGallery(gallery.Gallery),
	}
	if next, ok := catalog.NextUpcoming(events.Events, now); ok {
		page.NextEvent = &next
		day, _ := next.Day()
		countdown := catalog.CountdownTo(day, now)
		page.Countdown = &countdown
	}
	if featured, ok := catalog.FeaturedEvent(events.Events, now); ok {
		page.FeaturedEvent = &featured
	}

	respondData(c, page, eventsRes, galleryRes)
}
