package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"campusconnect-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStorage struct{}

func (brokenStorage) GetItem(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

func (brokenStorage) SetItem(context.Context, string, string, string) error {
	return errors.New("storage unavailable")
}

func (brokenStorage) Clear(context.Context, string) error {
	return errors.New("storage unavailable")
}

func TestBookmarkToggle(t *testing.T) {
	m := NewBookmarkManager(NewMemorySessionStorage(time.Hour))
	ctx := context.Background()

	for _, kind := range []models.BookmarkKind{models.BookmarkEvents, models.BookmarkGallery} {
		t.Run(string(kind), func(t *testing.T) {
			on, err := m.ToggleBookmark(ctx, "s1", kind, 3)
			require.NoError(t, err)
			assert.True(t, on)
			assert.True(t, m.IsBookmarked(ctx, "s1", kind, 3))

			on, err = m.ToggleBookmark(ctx, "s1", kind, 3)
			require.NoError(t, err)
			assert.False(t, on)
			assert.False(t, m.IsBookmarked(ctx, "s1", kind, 3))
		})
	}
}

func TestBookmarkAddRemove(t *testing.T) {
	m := NewBookmarkManager(NewMemorySessionStorage(time.Hour))
	ctx := context.Background()

	assert.Equal(t, []int{}, m.GetBookmarks(ctx, "s1", models.BookmarkEvents))

	require.NoError(t, m.AddBookmark(ctx, "s1", models.BookmarkEvents, 5))
	require.NoError(t, m.AddBookmark(ctx, "s1", models.BookmarkEvents, 2))
	require.NoError(t, m.AddBookmark(ctx, "s1", models.BookmarkEvents, 5))
	require.NoError(t, m.AddBookmark(ctx, "s1", models.BookmarkEvents, 9))
	assert.Equal(t, []int{5, 2, 9}, m.GetBookmarks(ctx, "s1", models.BookmarkEvents))

	require.NoError(t, m.RemoveBookmark(ctx, "s1", models.BookmarkEvents, 2))
	require.NoError(t, m.RemoveBookmark(ctx, "s1", models.BookmarkEvents, 100))
	assert.Equal(t, []int{5, 9}, m.GetBookmarks(ctx, "s1", models.BookmarkEvents))

	assert.Empty(t, m.GetBookmarks(ctx, "s1", models.BookmarkGallery), "kinds are independent")
	assert.Empty(t, m.GetBookmarks(ctx, "s2", models.BookmarkEvents), "sessions are independent")

	require.NoError(t, m.Clear(ctx, "s1"))
	assert.Empty(t, m.GetBookmarks(ctx, "s1", models.BookmarkEvents))
}

func TestBookmarkCorruptStorage(t *testing.T) {
	storage := NewMemorySessionStorage(time.Hour)
	m := NewBookmarkManager(storage)
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, "s1", models.BookmarkEvents.StorageKey(), "{not json"))
	assert.Equal(t, []int{}, m.GetBookmarks(ctx, "s1", models.BookmarkEvents))

	on, err := m.ToggleBookmark(ctx, "s1", models.BookmarkEvents, 1)
	require.NoError(t, err)
	assert.True(t, on)

	raw, found, err := storage.GetItem(ctx, "s1", "campusconnect_bookmarks_events")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[1]", raw)
}

func TestBookmarkStorageFailures(t *testing.T) {
	m := NewBookmarkManager(brokenStorage{})
	ctx := context.Background()

	assert.Equal(t, []int{}, m.GetBookmarks(ctx, "s1", models.BookmarkEvents))
	assert.False(t, m.IsBookmarked(ctx, "s1", models.BookmarkEvents, 1))

	_, err := m.ToggleBookmark(ctx, "s1", models.BookmarkEvents, 1)
	assert.Error(t, err)
}

func TestMemorySessionExpires(t *testing.T) {
	storage := NewMemorySessionStorage(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, storage.SetItem(ctx, "s1", "k", "v"))
	time.Sleep(40 * time.Millisecond)

	_, found, err := storage.GetItem(ctx, "s1", "k")
	require.NoError(t, err)
	assert.False(t, found)
}

// slowStorage widens the window between reading and writing a list.
type slowStorage struct {
	*MemorySessionStorage
}

func (s slowStorage) GetItem(ctx context.Context, session, key string) (string, bool, error) {
	time.Sleep(2 * time.Millisecond)
	return s.MemorySessionStorage.GetItem(ctx, session, key)
}

func TestBookmarkConcurrentAddsKeepEveryID(t *testing.T) {
	m := NewBookmarkManager(slowStorage{NewMemorySessionStorage(time.Hour)})
	ctx := context.Background()

	var wg sync.WaitGroup
	for id := 1; id <= 8; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, m.AddBookmark(ctx, "s1", models.BookmarkEvents, id))
		}(id)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, m.GetBookmarks(ctx, "s1", models.BookmarkEvents))
}

func TestBookmarkConcurrentTogglesSettle(t *testing.T) {
	m := NewBookmarkManager(slowStorage{NewMemorySessionStorage(time.Hour)})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.ToggleBookmark(ctx, "s1", models.BookmarkGallery, 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, m.IsBookmarked(ctx, "s1", models.BookmarkGallery, 5))
}
