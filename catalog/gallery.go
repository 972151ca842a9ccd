package catalog

import (
	"slices"
	"strings"

	"campusconnect-api/models"
)

// FilterGallery narrows gallery items by year or by category. Filters
// containing a hyphen ("2023-24") are academic years and match exactly.
func FilterGallery(items []models.GalleryItem, filter string) []models.GalleryItem {
	if filter == "" || filter == filterAll {
		return slices.Clone(items)
	}
	filtered := make([]models.GalleryItem, 0, len(items))
	byYear := strings.Contains(filter, "-")
	for _, item := range items {
		if byYear && item.Year == filter || !byYear && strings.EqualFold(item.Category, filter) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func FindGalleryItem(items []models.GalleryItem, id int) (models.GalleryItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.GalleryItem{}, false
}

func FeaturedGallery(items []models.GalleryItem) []models.GalleryItem {
	featured := make([]models.GalleryItem, 0)
	for _, item := range items {
		if item.Featured {
			featured = append(featured, item)
		}
	}
	return featured
}

// GalleryYears lists distinct years in first-seen order.
func GalleryYears(items []models.GalleryItem) []string {
	seen := make(map[string]struct{})
	years := make([]string, 0)
	for _, item := range items {
		if _, ok := seen[item.Year]; ok {
			continue
		}
		seen[item.Year] = struct{}{}
		years = append(years, item.Year)
	}
	return years
}

func GalleryStats(items []models.GalleryItem) models.GalleryStats {
	events := make(map[string]struct{})
	for _, item := range items {
		events[item.Event] = struct{}{}
	}
	return models.GalleryStats{
		Images: len(items),
		Events: len(events),
		Years:  len(GalleryYears(items)),
	}
}

// ResolveEvents maps bookmarked ids to events in bookmark order. Ids
// missing from the collection are dropped.
func ResolveEvents(events []models.Event, ids []int) []models.Event {
	resolved := make([]models.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := FindEvent(events, id); ok {
			resolved = append(resolved, e)
		}
	}
	return resolved
}

func ResolveGallery(items []models.GalleryItem, ids []int) []models.GalleryItem {
	resolved := make([]models.GalleryItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := FindGalleryItem(items, id); ok {
			resolved = append(resolved, item)
		}
	}
	return resolved
}
