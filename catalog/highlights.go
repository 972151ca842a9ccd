package catalog

import (
	"strings"

	"campusconnect-api/models"
)

var categoryHighlights = map[string][]string{
	models.CategoryTechnical: {
		"Expert speakers from industry",
		"Hands-on workshops and demonstrations",
		"Networking opportunities with professionals",
		"Certificate of participation",
	},
	models.CategoryCultural: {
		"Showcase of diverse cultural performances",
		"Interactive cultural activities",
		"Traditional food and refreshments",
		"Photography and videography opportunities",
	},
	models.CategorySports: {
		"Competitive tournaments and matches",
		"Professional coaching and guidance",
		"Awards and recognition for winners",
		"Team building activities",
	},
	models.CategoryAcademic: {
		"Recognition of outstanding achievements",
		"Inspirational speeches by faculty",
		"Academic excellence awards",
		"Networking with academic community",
	},
}

var defaultHighlights = []string{
	"Engaging activities and programs",
	"Learning and development opportunities",
	"Community interaction and networking",
}

const (
	maxHighlights     = 5
	limitedSeatingCap = 100
)

// Highlights lists at most five selling points for the event detail page.
func Highlights(e models.Event) []string {
	base, ok := categoryHighlights[strings.ToLower(e.Category)]
	if !ok {
		base = defaultHighlights
	}
	highlights := make([]string, 0, len(base)+3)
	if e.Featured {
		highlights = append(highlights, "Featured event of the season")
	}
	highlights = append(highlights, base...)
	if e.Capacity > 0 && e.Capacity < limitedSeatingCap {
		highlights = append(highlights, "Limited seating - Register early")
	}
	if e.RegistrationRequired {
		highlights = append(highlights, "Advance registration required")
	}
	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}
