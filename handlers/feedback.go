package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"campusconnect-api/catalog"
	"campusconnect-api/models"
	"campusconnect-api/monitoring"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s.'’-]+$`)

var errEventNotEligible = errors.New("event is not open for feedback")

type FeedbackHandler struct {
	site *services.Site
}

func NewFeedbackHandler(site *services.Site) *FeedbackHandler {
	return &FeedbackHandler{site: site}
}

// GetFeedbackEvents lists the events feedback can be given for: past
// events of the last 30 days, newest first.
func (h *FeedbackHandler) GetFeedbackEvents(c *gin.Context) {
	doc, res := h.site.Loader.Events(c.Request.Context())
	respondData(c, catalog.PastMonthEvents(doc.Events, h.site.Now()), res)
}

// SubmitFeedback validates a feedback form. Submissions are logged and
// counted, not stored.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req models.Feedback
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid feedback", err)
		return
	}
	if !namePattern.MatchString(req.Name) {
		respondError(c, http.StatusBadRequest, "invalid feedback",
			errors.New("please enter a valid full name (2-50 characters, letters only)"))
		return
	}

	doc, _ := h.site.Loader.Events(c.Request.Context())
	eligible := catalog.PastMonthEvents(doc.Events, h.site.Now())
	if _, ok := catalog.FindEvent(eligible, req.EventAttended); !ok {
		respondError(c, http.StatusUnprocessableEntity, "invalid feedback",
			fmt.Errorf("event %d: %w", req.EventAttended, errEventNotEligible))
		return
	}

	log.WithFields(log.Fields{
		"event":     req.EventAttended,
		"userType":  req.UserType,
		"rating":    req.Rating,
		"subscribe": req.Subscribe,
	}).Info("feedback received")
	monitoring.RecordFeedback()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Thank you for your feedback!",
	})
}
