package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/KirkDiggler/touchline/internal/common/clock"
	"github.com/KirkDiggler/touchline/internal/common/logger"
	"github.com/KirkDiggler/touchline/internal/common/uuid"
	"github.com/KirkDiggler/touchline/internal/config"
	"github.com/KirkDiggler/touchline/internal/handlers/api"
	"github.com/KirkDiggler/touchline/internal/handlers/discord"
	"github.com/KirkDiggler/touchline/internal/repositories/history"
	"github.com/KirkDiggler/touchline/internal/repositories/snapshot"
	"github.com/KirkDiggler/touchline/internal/services/match"
	"github.com/KirkDiggler/touchline/internal/services/ticker"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr, err := logger.New(&logger.Config{Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := checkRedis(pingCtx, redisClient, cfg, logr); err != nil {
		logr.WithError(err).Fatal("failed to connect to Redis")
	}

	// Initialize repositories
	snapshotRepo, err := snapshot.NewRedis(&snapshot.Config{
		RedisClient: redisClient,
		Slot:        cfg.SnapshotSlot,
	})
	if err != nil {
		logr.WithError(err).Fatal("failed to create snapshot repository")
	}

	historyRepo, db, err := newHistoryRepo(cfg, redisClient)
	if err != nil {
		logr.WithError(err).Fatal("failed to create history repository")
	}
	if db != nil {
		defer db.Close()
	}

	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		logr.WithError(err).Fatal("failed to load impact weights")
	}

	systemClock := clock.New()

	// Initialize match service
	matchSvc, err := match.New(&match.Config{
		SquadSize:          cfg.SquadSize,
		StartingOnField:    cfg.StartingOnField,
		LockSignalDuration: cfg.LockSignalDuration,
		PersistTimeout:     cfg.PersistTimeout,
		Weights:            &weights,
		SnapshotRepo:       snapshotRepo,
		HistoryRepo:        historyRepo,
		Clock:              systemClock,
		UUIDGenerator:      uuid.New(),
		Logger:             logr,
	})
	if err != nil {
		logr.WithError(err).Fatal("failed to create match service")
	}

	runner, err := ticker.New(&ticker.Config{
		Interval: cfg.TickInterval,
		Match:    matchSvc,
		Clock:    systemClock,
		Logger:   logr,
	})
	if err != nil {
		logr.WithError(err).Fatal("failed to create match ticker")
	}

	server, err := api.New(&api.Config{
		Addr:           cfg.HTTPAddr,
		AllowedOrigins: cfg.AllowedOrigins,
		MatchService:   matchSvc,
		Logger:         logr,
	})
	if err != nil {
		logr.WithError(err).Fatal("failed to create api server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if resume, err := matchSvc.CheckResume(ctx, &match.CheckResumeInput{}); err == nil && resume.Available {
		logr.WithFields(logrus.Fields{
			"match_id":      resume.MatchID,
			"match_seconds": resume.MatchSeconds,
			"saved_at":      resume.SavedAt,
		}).Info("interrupted match available to resume")
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		runner.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			logr.WithError(err).Error("api server stopped")
			stop()
		}
	}()

	// The Discord bot is optional; the HTTP API is always served
	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.DiscordApplicationID,
			GuildID:       cfg.DiscordGuildID,
			MatchService:  matchSvc,
			Logger:        logr,
		})
		if err != nil {
			logr.WithError(err).Fatal("failed to create Discord bot")
		}
		if err := bot.Start(); err != nil {
			logr.WithError(err).Fatal("failed to start Discord bot")
		}
	}

	logr.Info("tracker is running")
	<-ctx.Done()

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logr.WithError(err).Warn("error stopping bot")
		}
	}
	wg.Wait()
	matchSvc.Close()

	logr.Info("tracker has been shut down")
}

// checkRedis pings Redis. An outage is only fatal when Redis also holds the
// match history; the resume slot alone is a cache and tracking runs without it.
func checkRedis(ctx context.Context, client *redis.Client, cfg *config.Config, log logrus.FieldLogger) error {
	err := client.Ping(ctx).Err()
	if err == nil {
		return nil
	}
	if cfg.HistoryBackend == config.HistoryBackendRedis {
		return err
	}
	log.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, matches cannot be resumed until it returns")
	return nil
}

// newHistoryRepo builds the configured history backend. The returned db is
// non-nil only for SQLite and must be closed by the caller.
func newHistoryRepo(cfg *config.Config, redisClient *redis.Client) (history.Repository, *sql.DB, error) {
	if cfg.HistoryBackend == config.HistoryBackendSQLite {
		db, err := history.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := history.NewSQLite(&history.SQLiteConfig{DB: db})
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db, nil
	}

	repo, err := history.NewRedis(&history.Config{RedisClient: redisClient})
	if err != nil {
		return nil, nil, err
	}
	return repo, nil, nil
}
