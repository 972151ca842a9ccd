package services

import (
	"context"
	"time"

	"campusconnect-api/catalog"
	"campusconnect-api/models"

	log "github.com/sirupsen/logrus"
)

// Site is the per-process application context handed to handlers: the
// data loader and the bookmark store. It is built once at start-up.
type Site struct {
	Loader    *Loader
	Bookmarks *BookmarkManager
	Publisher Publisher
	Now       func() time.Time
}

// Publisher stores replacement data documents. Only object storage
// backed sites have one.
type Publisher interface {
	Publish(ctx context.Context, path string, data []byte) error
}

func NewSite(loader *Loader, bookmarks *BookmarkManager, publisher Publisher) *Site {
	return &Site{
		Loader:    loader,
		Bookmarks: bookmarks,
		Publisher: publisher,
		Now:       time.Now,
	}
}

// Preload loads every resource one after another. A failing resource is
// reported and does not stop the rest.
func (s *Site) Preload(ctx context.Context) []models.Notice {
	for _, kind := range models.Resources {
		res := s.Loader.LoadJSON(ctx, kind)
		if res.Notice == nil {
			log.WithField("resource", kind).Info("data loaded")
		}
	}
	return s.Loader.Notices()
}

// BookmarkedItems resolves a session's bookmarks against the currently
// loaded collections. Ids of removed items are skipped.
func (s *Site) BookmarkedItems(ctx context.Context, session string) models.BookmarkedItems {
	events, _ := s.Loader.Events(ctx)
	gallery, _ := s.Loader.Gallery(ctx)

	return models.BookmarkedItems{
		Events:  catalog.ResolveEvents(events.Events, s.Bookmarks.GetBookmarks(ctx, session, models.BookmarkEvents)),
		Gallery: catalog.ResolveGallery(gallery.Gallery, s.Bookmarks.GetBookmarks(ctx, session, models.BookmarkGallery)),
	}
}
