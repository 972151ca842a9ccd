package models

import "fmt"

// BookmarkKind selects one of the per-session bookmark lists.
type BookmarkKind string

const (
	BookmarkEvents  BookmarkKind = "events"
	BookmarkGallery BookmarkKind = "gallery"
)

const bookmarkKeyPrefix = "campusconnect_bookmarks_"

func ParseBookmarkKind(s string) (BookmarkKind, error) {
	switch BookmarkKind(s) {
	case BookmarkEvents, BookmarkGallery:
		return BookmarkKind(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownBookmarkKind)
}

// StorageKey is the session storage key holding the kind's id list.
func (k BookmarkKind) StorageKey() string {
	return bookmarkKeyPrefix + string(k)
}

type BookmarkState struct {
	Kind       BookmarkKind `json:"kind"`
	ID         int          `json:"id"`
	Bookmarked bool         `json:"bookmarked"`
}

type BookmarkedItems struct {
	Events  []Event       `json:"events"`
	Gallery []GalleryItem `json:"gallery"`
}
