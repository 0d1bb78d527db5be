// Command api serves the raid-hub HTTP API.
//
//	@title			raid-hub API
//	@version		1.0
//	@description	Raid video catalogue, account registration and YouTube playlist aggregation.
//	@BasePath		/
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

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"github.com/ljhwogur/raid-hub/internal/api"
	"github.com/ljhwogur/raid-hub/internal/api/handler"
	"github.com/ljhwogur/raid-hub/internal/core/service"
	mongodb "github.com/ljhwogur/raid-hub/internal/infrastructure/db/mongo"
	redisdb "github.com/ljhwogur/raid-hub/internal/infrastructure/db/redis"
	"github.com/ljhwogur/raid-hub/internal/infrastructure/youtube"
	"github.com/ljhwogur/raid-hub/internal/pkg/config"
	"github.com/ljhwogur/raid-hub/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "raid-hub",
	})

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("raid-hub failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	videoRepo := mongodb.NewVideoRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	if err := mongodb.EnsureIndexes(ctx, videoRepo, userRepo); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	userService := service.NewUserService(userRepo, cfg.BcryptCost, log)
	if cfg.Admin.Password != "" {
		if err := userService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	ytClient := youtube.NewClient(youtube.Config{
		APIKey:  cfg.YouTube.APIKey,
		BaseURL: cfg.YouTube.BaseURL,
		Timeout: cfg.YouTube.HTTPTimeout,
	})
	if !ytClient.HasCredential() {
		log.Warn().Msg("YOUTUBE_API_KEY is not set; playlist requests will be rejected")
	}

	sessionStore := redisdb.NewSessionStore(rdb, redisdb.SessionStoreConfig{
		Secret:      []byte(cfg.Session.Secret),
		IdleTimeout: cfg.Session.IdleTimeout,
		MaxLifetime: cfg.Session.MaxLifetime,
		Cookie: sessions.Options{
			Path:     "/",
			HttpOnly: true,
			Secure:   cfg.Session.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		},
	})

	e := api.NewRouter(api.Dependencies{
		Videos:    service.NewVideoService(videoRepo, log),
		Users:     userService,
		Playlists: service.NewPlaylistService(ytClient, log),
		Sessions:  sessionStore,
		Checks: map[string]handler.Check{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		AllowedOrigin: cfg.CORSAllowedOrigin,
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
