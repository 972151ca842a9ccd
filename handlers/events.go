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

type EventHandler struct {
	site *services.Site
}

func NewEventHandler(site *services.Site) *EventHandler {
	return &EventHandler{site: site}
}

// GetEvents lists events. Query: status (default upcoming, "all" for
// every event), category, q (free text) and sort (default date).
func (h *EventHandler) GetEvents(c *gin.Context) {
	doc, res := h.site.Loader.Events(c.Request.Context())

	events := catalog.EventsByStatus(doc.Events, c.DefaultQuery("status", models.StatusUpcoming))
	events = catalog.FilterEvents(events, c.Query("category"))
	events = catalog.SearchEvents(events, c.Query("q"))
	events = catalog.SortEvents(events, c.DefaultQuery("sort", catalog.SortByDate))

	respondData(c, events, res)
}

type EventDetail struct {
	Event      models.Event       `json:"event"`
	Bookmarked bool               `json:"bookmarked"`
	DaysUntil  string             `json:"daysUntil,omitempty"`
	Duration   string             `json:"duration"`
	Countdown  *catalog.Countdown `json:"countdown,omitempty"`
	Highlights []string           `json:"highlights"`
	Related    []models.Event     `json:"related"`
}

// GetEvent returns one event with everything the detail page shows.
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	doc, res := h.site.Loader.Events(ctx)
	event, found := catalog.FindEvent(doc.Events, id)
	if !found {
		respondError(c, http.StatusNotFound, "event not found", fmt.Errorf("event %d: %w", id, models.ErrNotFound))
		return
	}

	detail := EventDetail{
		Event:      event,
		Bookmarked: h.site.Bookmarks.IsBookmarked(ctx, middleware.SessionID(c), models.BookmarkEvents, id),
		Duration:   catalog.Duration(event),
		Highlights: catalog.Highlights(event),
		Related:    catalog.RelatedEvents(doc.Events, event.Category, event.ID),
	}
	if day, ok := event.Day(); ok {
		now := h.site.Now()
		detail.DaysUntil = catalog.DaysUntilLabel(day, now)
		if event.IsUpcoming() {
			countdown := catalog.CountdownTo(day, now)
			detail.Countdown = &countdown
		}
	}

	respondData(c, detail, res)
}
