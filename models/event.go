package models

import (
	"strings"
	"time"
)

const (
	CategoryTechnical    = "technical"
	CategoryCultural     = "cultural"
	CategorySports       = "sports"
	CategoryAcademic     = "academic"
	CategoryDepartmental = "departmental"
)

const (
	StatusUpcoming = "upcoming"
	StatusPast     = "past"
	StatusOngoing  = "ongoing"
)

// Event is a campus event as published in data/events.json
type Event struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	Category             string `json:"category"`
	Status               string `json:"status"`
	Date                 string `json:"date"`
	EndDate              string `json:"endDate,omitempty"`
	Time                 string `json:"time"`
	Venue                string `json:"venue"`
	Organizer            string `json:"organizer"`
	Description          string `json:"description"`
	LongDescription      string `json:"longDescription,omitempty"`
	Image                string `json:"image"`
	RegistrationRequired bool   `json:"registrationRequired,omitempty"`
	Featured             bool   `json:"featured,omitempty"`
	Priority             int    `json:"priority,omitempty"`
	Capacity             int    `json:"capacity,omitempty"`
}

// Day parses the event date. Plain dates are taken as UTC midnight.
func (e Event) Day() (time.Time, bool) {
	return ParseDate(e.Date)
}

// End parses the optional end date.
func (e Event) End() (time.Time, bool) {
	return ParseDate(e.EndDate)
}

func (e Event) IsUpcoming() bool {
	return strings.EqualFold(e.Status, StatusUpcoming)
}

type EventsDocument struct {
	Events []Event `json:"events"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate accepts the date formats found in the data files.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
