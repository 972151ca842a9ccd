// Package catalog holds the filter, sort and selection helpers applied to
// the loaded collections. Functions never modify their input slices.
package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"campusconnect-api/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortByDate     = "date"
	SortByName     = "name"
	SortByCategory = "category"
)

const filterAll = "all"

// FilterEvents keeps events whose category matches case-insensitively.
// An empty category or "all" returns a copy of the input.
func FilterEvents(events []models.Event, category string) []models.Event {
	if category == "" || category == filterAll {
		return slices.Clone(events)
	}
	filtered := make([]models.Event, 0, len(events))
	for _, e := range events {
		if strings.EqualFold(e.Category, category) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// SortEvents returns a stably sorted copy. Unknown keys keep input order.
func SortEvents(events []models.Event, key string) []models.Event {
	sorted := slices.Clone(events)
	switch key {
	case SortByDate:
		slices.SortStableFunc(sorted, compareDates)
	case SortByName:
		col := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b models.Event) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortByCategory:
		col := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b models.Event) int {
			return col.CompareString(a.Category, b.Category)
		})
	}
	return sorted
}

// Unparseable dates go after every valid one.
func compareDates(a, b models.Event) int {
	da, okA := a.Day()
	db, okB := b.Day()
	switch {
	case okA && okB:
		return da.Compare(db)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

// SearchEvents matches query as a case-insensitive substring of the name,
// organizer, category, description or venue.
func SearchEvents(events []models.Event, query string) []models.Event {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return events
	}
	found := make([]models.Event, 0, len(events))
	for _, e := range events {
		text := strings.ToLower(strings.Join([]string{e.Name, e.Organizer, e.Category, e.Description, e.Venue}, " "))
		if strings.Contains(text, query) {
			found = append(found, e)
		}
	}
	return found
}

func EventsByStatus(events []models.Event, status string) []models.Event {
	if status == "" || status == filterAll {
		return events
	}
	matched := make([]models.Event, 0, len(events))
	for _, e := range events {
		if strings.EqualFold(e.Status, status) {
			matched = append(matched, e)
		}
	}
	return matched
}

func FindEvent(events []models.Event, id int) (models.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// NextUpcoming returns the earliest upcoming event dated after now.
func NextUpcoming(events []models.Event, now time.Time) (models.Event, bool) {
	var (
		next  models.Event
		nextT time.Time
		found bool
	)
	for _, e := range events {
		if !e.IsUpcoming() {
			continue
		}
		day, ok := e.Day()
		if !ok || !day.After(now) {
			continue
		}
		if !found || day.Before(nextT) {
			next, nextT, found = e, day, true
		}
	}
	return next, found
}

// FeaturedEvent picks among this month's upcoming or ongoing events:
// featured ones first, then by descending priority.
func FeaturedEvent(events []models.Event, now time.Time) (models.Event, bool) {
	candidates := make([]models.Event, 0)
	for _, e := range events {
		day, ok := e.Day()
		if !ok || day.Year() != now.Year() || day.Month() != now.Month() {
			continue
		}
		if strings.EqualFold(e.Status, models.StatusUpcoming) || strings.EqualFold(e.Status, models.StatusOngoing) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return models.Event{}, false
	}
	slices.SortStableFunc(candidates, func(a, b models.Event) int {
		if a.Featured != b.Featured {
			if a.Featured {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.Priority, a.Priority)
	})
	return candidates[0], true
}

const maxRelated = 3

// RelatedEvents returns up to three other upcoming events of the category.
func RelatedEvents(events []models.Event, category string, excludeID int) []models.Event {
	related := make([]models.Event, 0, maxRelated)
	for _, e := range events {
		if len(related) == maxRelated {
			break
		}
		if e.ID != excludeID && e.IsUpcoming() && strings.EqualFold(e.Category, category) {
			related = append(related, e)
		}
	}
	return related
}

// PastMonthEvents lists past events from the last 30 days, newest first.
func PastMonthEvents(events []models.Event, now time.Time) []models.Event {
	from := now.Add(-30 * 24 * time.Hour)
	past := make([]models.Event, 0)
	for _, e := range events {
		if !strings.EqualFold(e.Status, models.StatusPast) {
			continue
		}
		day, ok := e.Day()
		if ok && !day.Before(from) && !day.After(now) {
			past = append(past, e)
		}
	}
	slices.SortStableFunc(past, func(a, b models.Event) int {
		return compareDates(b, a)
	})
	return past
}
