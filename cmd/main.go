package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sitegen_server/config"
	"sitegen_server/internal/ai"
	"sitegen_server/internal/api"
	"sitegen_server/internal/deploy"
	"sitegen_server/internal/logger"
	"sitegen_server/internal/metrics"
	"sitegen_server/internal/store"
)

func main() {
	// Load .env file first (optional, useful for development)
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	if cfg.OpenAIKey == "" {
		zlog.Warn("OPENAI_API_KEY is not set; every generate request will fail")
	}

	generator := ai.NewGenerator(ai.Options{
		APIKey:      cfg.OpenAIKey,
		Model:       cfg.OpenAIModel,
		BaseURL:     cfg.OpenAIBaseURL,
		Temperature: &cfg.OpenAITemperature,
	}, zlog)

	results, closeStore := openResultStore(cfg, zlog)
	defer closeStore()

	apiHandler := api.NewAPIHandler(generator, results, deploy.Disabled{}, zlog, cfg.MaxBodyBytes)

	var limiter *api.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = api.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(logger.Middleware(zlog))
	router.Use(metrics.Middleware())
	router.Use(gin.Recovery())

	api.RegisterRoutes(router, apiHandler, limiter)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// AI calls dominate request time.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting API server", zap.String("addr", cfg.ServerAddress), zap.String("model", generator.Model()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("API server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("API server forced shutdown", zap.Error(err))
	} else {
		zlog.Info("API server gracefully stopped")
	}
}

// openResultStore prefers Redis and falls back to process memory when no
// address is set or Redis is unreachable.
func openResultStore(cfg config.Config, zlog *zap.Logger) (store.ResultStore, func()) {
	if cfg.RedisAddr == "" {
		zlog.Info("result store: memory", zap.Duration("ttl", cfg.ResultTTL))
		return store.NewMemoryStore(cfg.ResultTTL), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := store.NewRedisClient(ctx, store.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		zlog.Warn("redis unavailable, using memory result store", zap.Error(err))
		return store.NewMemoryStore(cfg.ResultTTL), func() {}
	}

	zlog.Info("result store: redis", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.ResultTTL))
	return store.NewRedisStore(client, cfg.ResultTTL), func() { _ = client.Close() }
}
