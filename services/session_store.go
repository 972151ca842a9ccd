package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// SessionStorage is per-session string key/value storage that is
// discarded when the session expires.
type SessionStorage interface {
	GetItem(ctx context.Context, session, key string) (string, bool, error)
	SetItem(ctx context.Context, session, key, value string) error
	Clear(ctx context.Context, session string) error
}

// MemorySessionStorage keeps session values in process memory.
type MemorySessionStorage struct {
	cache *cache.Cache
}

func NewMemorySessionStorage(sessionTTL time.Duration) *MemorySessionStorage {
	return &MemorySessionStorage{cache: cache.New(sessionTTL, sessionTTL)}
}

func memoryKey(session, key string) string {
	return session + "|" + key
}

func (s *MemorySessionStorage) GetItem(_ context.Context, session, key string) (string, bool, error) {
	v, found := s.cache.Get(memoryKey(session, key))
	if !found {
		return "", false, nil
	}
	value, ok := v.(string)
	return value, ok, nil
}

func (s *MemorySessionStorage) SetItem(_ context.Context, session, key, value string) error {
	s.cache.Set(memoryKey(session, key), value, cache.DefaultExpiration)
	return nil
}

func (s *MemorySessionStorage) Clear(_ context.Context, session string) error {
	prefix := memoryKey(session, "")
	for key := range s.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			s.cache.Delete(key)
		}
	}
	return nil
}

// RedisSessionStorage keeps each session in one hash that expires
// sessionTTL after the last write.
type RedisSessionStorage struct {
	Redis *redis.Client
	ttl   time.Duration
}

func NewRedisSessionStorage(redisClient *redis.Client, sessionTTL time.Duration) *RedisSessionStorage {
	return &RedisSessionStorage{Redis: redisClient, ttl: sessionTTL}
}

func sessionKey(session string) string {
	return fmt.Sprintf("campusconnect:session:%s", session)
}

func (s *RedisSessionStorage) GetItem(ctx context.Context, session, key string) (string, bool, error) {
	value, err := s.Redis.HGet(ctx, sessionKey(session), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session %s: %w", session, err)
	}
	return value, true, nil
}

func (s *RedisSessionStorage) SetItem(ctx context.Context, session, key, value string) error {
	hash := sessionKey(session)
	if err := s.Redis.HSet(ctx, hash, key, value).Err(); err != nil {
		return fmt.Errorf("failed to write session %s: %w", session, err)
	}
	if err := s.Redis.Expire(ctx, hash, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to extend session %s: %w", session, err)
	}
	return nil
}

func (s *RedisSessionStorage) Clear(ctx context.Context, session string) error {
	if err := s.Redis.Del(ctx, sessionKey(session)).Err(); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", session, err)
	}
	return nil
}
