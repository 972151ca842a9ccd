package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"campusconnect-api/models"
	"campusconnect-api/monitoring"

	log "github.com/sirupsen/logrus"
)

// BookmarkManager keeps one ordered id list per bookmark kind in session
// storage, JSON encoded. Unreadable lists count as empty.
// Mutations of one list are serialized within the process.
type BookmarkManager struct {
	storage SessionStorage
	mu      sync.Mutex
}

func NewBookmarkManager(storage SessionStorage) *BookmarkManager {
	return &BookmarkManager{storage: storage}
}

// GetBookmarks returns bookmarked ids in insertion order.
func (m *BookmarkManager) GetBookmarks(ctx context.Context, session string, kind models.BookmarkKind) []int {
	raw, found, err := m.storage.GetItem(ctx, session, kind.StorageKey())
	if err != nil {
		log.WithField("kind", kind).WithError(err).Warn("failed to read bookmarks")
		return []int{}
	}
	if !found {
		return []int{}
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil || ids == nil {
		return []int{}
	}
	return ids
}

func (m *BookmarkManager) IsBookmarked(ctx context.Context, session string, kind models.BookmarkKind, id int) bool {
	return slices.Contains(m.GetBookmarks(ctx, session, kind), id)
}

// AddBookmark appends id unless it is already bookmarked.
func (m *BookmarkManager) AddBookmark(ctx context.Context, session string, kind models.BookmarkKind, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.add(ctx, session, kind, m.GetBookmarks(ctx, session, kind), id)
}

// RemoveBookmark removes id if present.
func (m *BookmarkManager) RemoveBookmark(ctx context.Context, session string, kind models.BookmarkKind, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.remove(ctx, session, kind, m.GetBookmarks(ctx, session, kind), id)
}

// ToggleBookmark flips membership of id and returns the new state.
func (m *BookmarkManager) ToggleBookmark(ctx context.Context, session string, kind models.BookmarkKind, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.GetBookmarks(ctx, session, kind)
	if slices.Contains(ids, id) {
		return false, m.remove(ctx, session, kind, ids, id)
	}
	return true, m.add(ctx, session, kind, ids, id)
}

func (m *BookmarkManager) add(ctx context.Context, session string, kind models.BookmarkKind, ids []int, id int) error {
	if slices.Contains(ids, id) {
		return nil
	}
	if err := m.save(ctx, session, kind, append(ids, id)); err != nil {
		return err
	}
	monitoring.RecordBookmark(string(kind), "add")
	return nil
}

func (m *BookmarkManager) remove(ctx context.Context, session string, kind models.BookmarkKind, ids []int, id int) error {
	i := slices.Index(ids, id)
	if i < 0 {
		return nil
	}
	if err := m.save(ctx, session, kind, slices.Delete(ids, i, i+1)); err != nil {
		return err
	}
	monitoring.RecordBookmark(string(kind), "remove")
	return nil
}

// Clear forgets every bookmark of the session.
func (m *BookmarkManager) Clear(ctx context.Context, session string) error {
	return m.storage.Clear(ctx, session)
}

func (m *BookmarkManager) save(ctx context.Context, session string, kind models.BookmarkKind, ids []int) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	if err := m.storage.SetItem(ctx, session, kind.StorageKey(), string(raw)); err != nil {
		return fmt.Errorf("failed to save %s bookmarks: %w", kind, err)
	}
	return nil
}
