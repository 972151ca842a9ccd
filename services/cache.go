package services

import (
	"time"

	"campusconnect-api/models"

	"github.com/patrickmn/go-cache"
)

// CacheService keeps fetched documents keyed by resource path.
type CacheService struct {
	cache *cache.Cache
}

func NewCacheService(defaultExpiration, cleanupInterval time.Duration) *CacheService {
	return &CacheService{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *CacheService) Get(key string) (models.CacheEntry, bool) {
	v, found := s.cache.Get(key)
	if !found {
		return models.CacheEntry{}, false
	}
	entry, ok := v.(models.CacheEntry)
	return entry, ok
}

func (s *CacheService) Set(key string, entry models.CacheEntry) {
	s.cache.Set(key, entry, cache.DefaultExpiration)
}

func (s *CacheService) Delete(key string) {
	s.cache.Delete(key)
}

func (s *CacheService) Flush() {
	s.cache.Flush()
}
