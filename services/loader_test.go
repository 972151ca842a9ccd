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

type stubSource struct {
	mu    sync.Mutex
	docs  map[string]string
	err   error
	calls map[string]int
}

func newStubSource(docs map[string]string) *stubSource {
	return &stubSource{docs: docs, calls: make(map[string]int)}
}

func (s *stubSource) Fetch(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[path]++
	if s.err != nil {
		return nil, s.err
	}
	doc, ok := s.docs[path]
	if !ok {
		return nil, errors.New("fetch " + path + " failed: 404 Not Found")
	}
	return []byte(doc), nil
}

func (s *stubSource) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

const eventsJSON = `{"events":[
	{"id":1,"name":"B","category":"sports","status":"upcoming","date":"2024-05-01"},
	{"id":2,"name":"A","category":"technical","status":"upcoming","date":"2024-04-01"}
]}`

func newTestLoader(src Source) (*Loader, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	loader := NewLoader(src, NewCacheService(time.Hour, time.Hour), 10*time.Minute)
	loader.now = clock.Now
	return loader, clock
}

func TestLoaderCachesWithinTTL(t *testing.T) {
	src := newStubSource(map[string]string{"data/events.json": eventsJSON})
	loader, clock := newTestLoader(src)
	ctx := context.Background()

	first := loader.LoadJSON(ctx, models.ResourceEvents)
	require.Nil(t, first.Notice)
	assert.False(t, first.Cached)
	assert.JSONEq(t, eventsJSON, string(first.Data))

	clock.Advance(9 * time.Minute)
	second := loader.LoadJSON(ctx, models.ResourceEvents)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, src.Calls("data/events.json"))

	clock.Advance(time.Minute)
	third := loader.LoadJSON(ctx, models.ResourceEvents)
	assert.False(t, third.Cached)
	assert.Equal(t, 2, src.Calls("data/events.json"))
}

func TestLoaderFallbacks(t *testing.T) {
	src := newStubSource(map[string]string{})
	loader, _ := newTestLoader(src)
	ctx := context.Background()

	tests := []struct {
		kind models.ResourceKind
		want string
	}{
		{kind: models.ResourceEvents, want: `{"events":[]}`},
		{kind: models.ResourceGallery, want: `{"gallery":[]}`},
		{kind: models.ResourceContacts, want: `{"staff":[],"students":[]}`},
		{kind: models.ResourceAbout, want: `{"college":{},"vision":"","mission":"","stats":[]}`},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			res := loader.LoadJSON(ctx, tc.kind)
			assert.JSONEq(t, tc.want, string(res.Data))
			require.NotNil(t, res.Notice)
			assert.Equal(t, tc.kind, res.Notice.Resource)
			assert.True(t, res.Notice.Retry)
		})
	}
	assert.Len(t, loader.Notices(), 4)
}

func TestLoaderRetriesAfterFailure(t *testing.T) {
	src := newStubSource(map[string]string{"data/events.json": eventsJSON})
	src.err = errors.New("connection refused")
	loader, _ := newTestLoader(src)
	ctx := context.Background()

	res := loader.LoadJSON(ctx, models.ResourceEvents)
	require.NotNil(t, res.Notice)
	res = loader.LoadJSON(ctx, models.ResourceEvents)
	require.NotNil(t, res.Notice)
	assert.Equal(t, 2, src.Calls("data/events.json"), "failures must not be cached")

	src.err = nil
	doc, res := loader.Events(ctx)
	assert.Nil(t, res.Notice)
	assert.Len(t, doc.Events, 2)
	assert.Empty(t, loader.Notices())
}

func TestLoaderRejectsInvalidJSON(t *testing.T) {
	src := newStubSource(map[string]string{"data/gallery.json": `{"gallery": [`})
	loader, _ := newTestLoader(src)

	doc, res := loader.Gallery(context.Background())
	require.NotNil(t, res.Notice)
	assert.Empty(t, doc.Gallery)

	loader.LoadJSON(context.Background(), models.ResourceGallery)
	assert.Equal(t, 2, src.Calls("data/gallery.json"))
}

func TestLoaderInvalidate(t *testing.T) {
	src := newStubSource(map[string]string{"data/events.json": eventsJSON})
	loader, _ := newTestLoader(src)
	ctx := context.Background()

	loader.LoadJSON(ctx, models.ResourceEvents)
	loader.Invalidate(models.ResourceEvents)
	loader.LoadJSON(ctx, models.ResourceEvents)
	loader.Flush()
	loader.LoadJSON(ctx, models.ResourceEvents)

	assert.Equal(t, 3, src.Calls("data/events.json"))
}

func TestSitePreloadContinuesAfterFailure(t *testing.T) {
	src := newStubSource(map[string]string{
		"data/events.json": eventsJSON,
		"data/about.json":  `{"vision":"v","mission":"m"}`,
	})
	loader, _ := newTestLoader(src)
	site := NewSite(loader, NewBookmarkManager(NewMemorySessionStorage(time.Hour)), nil)

	notices := site.Preload(context.Background())

	require.Len(t, notices, 2)
	assert.Equal(t, models.ResourceGallery, notices[0].Resource)
	assert.Equal(t, models.ResourceContacts, notices[1].Resource)
	for _, kind := range models.Resources {
		assert.Equal(t, 1, src.Calls(kind.Path()))
	}
}

func TestSiteBookmarkedItemsSkipsStale(t *testing.T) {
	src := newStubSource(map[string]string{"data/events.json": eventsJSON})
	loader, _ := newTestLoader(src)
	bookmarks := NewBookmarkManager(NewMemorySessionStorage(time.Hour))
	site := NewSite(loader, bookmarks, nil)
	ctx := context.Background()

	require.NoError(t, bookmarks.AddBookmark(ctx, "s1", models.BookmarkEvents, 2))
	require.NoError(t, bookmarks.AddBookmark(ctx, "s1", models.BookmarkEvents, 42))
	require.NoError(t, bookmarks.AddBookmark(ctx, "s1", models.BookmarkGallery, 7))

	items := site.BookmarkedItems(ctx, "s1")
	require.Len(t, items.Events, 1)
	assert.Equal(t, 2, items.Events[0].ID)
	assert.Empty(t, items.Gallery)
}
