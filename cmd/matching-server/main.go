// cmd/matching-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/c-xld1/ne-yesek-matching/internal/api"
	"github.com/c-xld1/ne-yesek-matching/internal/common/config"
	"github.com/c-xld1/ne-yesek-matching/internal/common/database"
	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
	"github.com/c-xld1/ne-yesek-matching/internal/common/observability"
	"github.com/c-xld1/ne-yesek-matching/internal/matching"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/recorder"
	"github.com/c-xld1/ne-yesek-matching/internal/store/elastic"
	"github.com/c-xld1/ne-yesek-matching/internal/store/postgres"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting matching server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Wire stores ---
	chefStore := postgres.NewChefStore(pg.DB, log)
	historyStore := postgres.NewHistoryStore(
		pg.DB, rdb.Client,
		time.Duration(cfg.Matching.HistoryCacheTTL)*time.Second,
		log,
	)

	var auditStore recorder.Store
	switch cfg.Audit.Backend {
	case "elasticsearch":
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
		auditStore = elastic.NewRecommendationStore(esClient.Client, cfg.Audit.IndexName)
	default:
		auditStore = postgres.NewRecommendationStore(pg.DB)
	}

	auditRecorder := recorder.New(auditStore, recorder.Config{
		WriteTimeout: time.Duration(cfg.Audit.WriteTimeout) * time.Millisecond,
		RetryDelay:   time.Duration(cfg.Audit.RetryDelay) * time.Millisecond,
	}, log)

	engine := matching.NewEngine(
		chefStore, historyStore, auditRecorder, obs,
		matching.Config{
			RequestTimeout:     time.Duration(cfg.Matching.RequestTimeout) * time.Millisecond,
			MaxResults:         cfg.Matching.MaxResults,
			AuditTopK:          cfg.Audit.TopK,
			TravelMinutesPerKm: cfg.Matching.TravelMinutesPerKm,
			HistoryLimit:       cfg.Matching.HistoryLimit,
			Weights:            cfg.Matching.Scoring,
			Thresholds:         cfg.Matching.Status,
		},
		log,
	)

	router := api.NewRouter(engine, pg, rdb, log)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
