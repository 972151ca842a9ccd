package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DataSourceHTTP  = "http"
	DataSourceMinIO = "minio"
	DataSourceDir   = "dir"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	ServerPort  string
	Environment string
	LogLevel    string
	LogFormat   string

	DataSource   string // http, minio or dir
	DataBaseURL  string // Site root for the http source
	DataDir      string // Site root for the dir source
	DataPrefix   string // Object prefix for the minio source
	CacheTTL     time.Duration
	FetchTimeout time.Duration

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	SessionStore  string // memory or redis
	SessionTTL    time.Duration
	RedisURL      string
	RedisPassword string
	RedisDB       int

	SessionCookieSameSite string // lax, strict or none
	SessionCookieSecure   bool

	CORSAllowedOrigins []string
	EnableMetrics      bool
}

func Load() *Config {
	cacheMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "10"))
	fetchSeconds, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	sessionMinutes, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "30"))
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	cookieSecure, _ := strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false"))
	enableMetrics, _ := strconv.ParseBool(getEnv("ENABLE_METRICS", "true"))

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),

		DataSource:   getEnv("DATA_SOURCE", DataSourceDir),
		DataBaseURL:  getEnv("DATA_BASE_URL", "http://localhost:5500"),
		DataDir:      getEnv("DATA_DIR", "."),
		DataPrefix:   getEnv("DATA_PREFIX", ""),
		CacheTTL:     time.Duration(cacheMinutes) * time.Minute,
		FetchTimeout: time.Duration(fetchSeconds) * time.Second,

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "minio:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "campusconnect"),
		MinIOUseSSL:    useSSL,

		SessionStore:  getEnv("SESSION_STORE", SessionStoreMemory),
		SessionTTL:    time.Duration(sessionMinutes) * time.Minute,
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		SessionCookieSameSite: getEnv("SESSION_COOKIE_SAMESITE", "lax"),
		SessionCookieSecure:   cookieSecure,

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		EnableMetrics:      enableMetrics,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
