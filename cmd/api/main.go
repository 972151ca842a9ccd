package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusconnect-api/config"
	"campusconnect-api/handlers"
	"campusconnect-api/middleware"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load .env if present, production sets real environment variables
	_ = godotenv.Load()

	cfg := config.Load()
	if err := setupLogger(cfg); err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}
	log.Info("Start service")

	source, publisher, err := newSource(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize data source: %v", err)
	}

	storage, closeStorage, err := newSessionStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize session storage: %v", err)
	}
	defer closeStorage()

	cacheService := services.NewCacheService(cfg.CacheTTL, 2*cfg.CacheTTL)
	loader := services.NewLoader(source, cacheService, cfg.CacheTTL)
	site := services.NewSite(loader, services.NewBookmarkManager(storage), publisher)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if notices := site.Preload(ctx); len(notices) > 0 {
		log.WithField("failed", len(notices)).Warn("some data could not be loaded, serving fallbacks")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(gin.Recovery())

	if cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api/v1")
	api.Use(middleware.Session(middleware.NewCookieOptions(cfg.SessionCookieSameSite, cfg.SessionCookieSecure)))
	handlers.RegisterRoutes(api, site)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("failed to stop http server: %v", err)
		}
	}()

	log.Infof("Starting server on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("Failed to start server: %v", err)
		cancel()
		closeStorage()
		os.Exit(1) //nolint:gocritic
	}
	log.Info("Server stopped")
}

func setupLogger(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func newSource(cfg *config.Config) (services.Source, services.Publisher, error) {
	switch cfg.DataSource {
	case config.DataSourceHTTP:
		return services.NewHTTPSource(cfg.DataBaseURL, cfg.FetchTimeout), nil, nil
	case config.DataSourceDir:
		return services.NewDirSource(cfg.DataDir), nil, nil
	case config.DataSourceMinIO:
		minioService, err := services.NewMinIOService(cfg)
		if err != nil {
			return nil, nil, err
		}
		return minioService, minioService, nil
	default:
		return nil, nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

func newSessionStorage(cfg *config.Config) (services.SessionStorage, func(), error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		return services.NewMemorySessionStorage(cfg.SessionTTL), func() {}, nil
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis %s: %w", cfg.RedisURL, err)
		}
		return services.NewRedisSessionStorage(client, cfg.SessionTTL), func() {
			if err := client.Close(); err != nil {
				log.Errorf("failed to close redis client: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
