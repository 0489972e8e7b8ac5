package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/channelchat/channelchat-go/internal/config"
	"github.com/channelchat/channelchat-go/internal/db"
	"github.com/channelchat/channelchat-go/internal/handler"
	"github.com/channelchat/channelchat-go/internal/middleware"
	"github.com/channelchat/channelchat-go/internal/repository"
	"github.com/channelchat/channelchat-go/internal/router"
	"github.com/channelchat/channelchat-go/internal/service"
	"github.com/channelchat/channelchat-go/internal/youtube"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "channelchat")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL, cfg.DatasetTTL)
	defer cache.Close()

	handler.InitMetrics(pool)

	var provider service.ChannelProvider
	if cfg.YouTubeAPIKey != "" {
		client, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build YouTube client")
		}
		provider = client
	} else {
		log.Warn().Msg("YOUTUBE_API_KEY not set, channel downloads disabled")
	}

	userRepo := repository.NewUserRepo(pool)
	sessionRepo := repository.NewSessionRepo(pool)
	messageRepo := repository.NewMessageRepo(pool)

	datasets := service.NewDatasetStore(cache)
	userSvc := service.NewUserService(userRepo)
	sessionSvc := service.NewSessionService(sessionRepo, messageRepo, datasets)
	ingestSvc := service.NewIngestService(provider)

	janitor := service.NewDatasetJanitor(datasets, cfg.DatasetTTL, 10*time.Minute)
	go janitor.Start(ctx)
	defer janitor.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "ChannelChat API",
		ServerHeader: "ChannelChat",
	})

	router.Setup(app, &router.Handlers{
		User:    handler.NewUserHandler(userSvc),
		Session: handler.NewSessionHandler(sessionSvc),
		Message: handler.NewMessageHandler(sessionSvc),
		Ingest:  handler.NewIngestHandler(ingestSvc, datasets, cfg.MaxVideos, cfg.YouTubeTimeout),
		Tool:    handler.NewToolHandler(datasets),
		Status:  handler.NewStatusHandler(userRepo, sessionRepo),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
		Export:  handler.NewExportHandler(datasets, cfg.ExportDir),
	}, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
