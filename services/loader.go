package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"campusconnect-api/models"
	"campusconnect-api/monitoring"

	log "github.com/sirupsen/logrus"
)

// LoadResult describes where loaded data came from.
type LoadResult struct {
	Data      json.RawMessage
	Cached    bool
	FetchedAt time.Time
	Notice    *models.Notice
}

// Loader fetches data documents through a TTL cache. It never fails:
// when a document cannot be fetched or parsed the resource's empty
// fallback is returned together with a notice, and nothing is cached so
// the next call goes to the source again.
type Loader struct {
	source Source
	cache  *CacheService
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	notices map[models.ResourceKind]models.Notice
}

func NewLoader(source Source, cache *CacheService, ttl time.Duration) *Loader {
	return &Loader{
		source:  source,
		cache:   cache,
		ttl:     ttl,
		now:     time.Now,
		notices: make(map[models.ResourceKind]models.Notice),
	}
}

// LoadJSON returns the document for kind.
func (l *Loader) LoadJSON(ctx context.Context, kind models.ResourceKind) LoadResult {
	path := kind.Path()

	// Check cache
	if entry, found := l.cache.Get(path); found && l.now().Sub(entry.FetchedAt) < l.ttl {
		monitoring.RecordLoad(string(kind), monitoring.OutcomeCacheHit)
		return LoadResult{Data: entry.Data, Cached: true, FetchedAt: entry.FetchedAt}
	}

	data, err := l.source.Fetch(ctx, path)
	if err == nil {
		_, err = DecodeDocument(kind, data)
	}
	if err != nil {
		monitoring.RecordLoad(string(kind), monitoring.OutcomeFailed)
		log.WithField("resource", kind).WithError(err).Warn("failed to load data, serving fallback")
		notice := l.recordFailure(kind, err)
		return LoadResult{Data: kind.Fallback(), Notice: &notice}
	}

	entry := models.CacheEntry{Data: json.RawMessage(data), FetchedAt: l.now()}
	l.cache.Set(path, entry)
	l.clearNotice(kind)
	monitoring.RecordLoad(string(kind), monitoring.OutcomeFetched)

	return LoadResult{Data: entry.Data, FetchedAt: entry.FetchedAt}
}

func (l *Loader) Events(ctx context.Context) (models.EventsDocument, LoadResult) {
	return loadAs[models.EventsDocument](ctx, l, models.ResourceEvents)
}

func (l *Loader) Gallery(ctx context.Context) (models.GalleryDocument, LoadResult) {
	return loadAs[models.GalleryDocument](ctx, l, models.ResourceGallery)
}

func (l *Loader) Contacts(ctx context.Context) (models.ContactsDocument, LoadResult) {
	return loadAs[models.ContactsDocument](ctx, l, models.ResourceContacts)
}

func (l *Loader) About(ctx context.Context) (models.AboutDocument, LoadResult) {
	return loadAs[models.AboutDocument](ctx, l, models.ResourceAbout)
}

func loadAs[T any](ctx context.Context, l *Loader, kind models.ResourceKind) (T, LoadResult) {
	res := l.LoadJSON(ctx, kind)
	var doc T
	if err := json.Unmarshal(res.Data, &doc); err != nil {
		// Cached data was decoded once already, only a broken fallback gets here.
		log.WithField("resource", kind).WithError(err).Error("failed to decode data")
		var empty T
		return empty, res
	}
	return doc, res
}

// Invalidate drops the cached document of kind.
func (l *Loader) Invalidate(kind models.ResourceKind) {
	l.cache.Delete(kind.Path())
}

func (l *Loader) Flush() {
	l.cache.Flush()
}

// Notices lists the outstanding load failures in resource order.
func (l *Loader) Notices() []models.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()

	notices := make([]models.Notice, 0, len(l.notices))
	for _, kind := range models.Resources {
		if n, ok := l.notices[kind]; ok {
			notices = append(notices, n)
		}
	}
	return notices
}

func (l *Loader) recordFailure(kind models.ResourceKind, err error) models.Notice {
	notice := models.Notice{
		Resource: kind,
		Message:  "Data loading issue: " + kind.Path() + ". Some content may not display correctly. (" + err.Error() + ")",
		At:       l.now(),
		Retry:    true,
	}

	l.mu.Lock()
	l.notices[kind] = notice
	l.mu.Unlock()

	return notice
}

func (l *Loader) clearNotice(kind models.ResourceKind) {
	l.mu.Lock()
	delete(l.notices, kind)
	l.mu.Unlock()
}
