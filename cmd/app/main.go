package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telegram-object-detection/internal/application"
	"telegram-object-detection/internal/config"
	"telegram-object-detection/internal/domain/ports/adapter"
	"telegram-object-detection/internal/infra/logging"
	"telegram-object-detection/internal/infra/metrics"
	"telegram-object-detection/internal/infra/queue"
	red "telegram-object-detection/internal/infra/redis"
	"telegram-object-detection/internal/infra/storage"
	tele "telegram-object-detection/internal/infra/telegram"
	"telegram-object-detection/internal/infra/web"
	"telegram-object-detection/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "development mode (console logs, noop transport allowed)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	// ---- Redis (result store) ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()
	predictions := red.NewPredictionRepo(redisClient, cfg.Redis.KeyPrefix)

	// ---- AWS (object store + job queue) ----
	awsCfg, err := storage.NewAWSConfig(ctx, cfg.AWS.Region)
	if err != nil {
		log.Fatalf("aws: %v", err)
	}
	objectStore := storage.NewS3ObjectStore(storage.NewS3Client(awsCfg), cfg.AWS.Bucket, cfg.AWS.DownloadDir, logger)
	jobQueue := queue.NewSQSJobQueue(queue.NewSQSClient(awsCfg), cfg.AWS.SQSURL, logger)

	// ---- Telegram ----
	var transport adapter.ChatTransport
	if cfg.Bot.Token == "" && cfg.Runtime.Dev {
		transport = tele.NewNoopChatTransport(logger)
	} else {
		real, err := tele.NewRealChatTransport(&cfg.Bot, logger)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		if err := real.RegisterWebhook(ctx); err != nil {
			log.Fatalf("telegram webhook: %v", err)
		}
		transport = real
	}

	// ---- Use cases ----
	submissionUC := usecase.NewSubmissionUseCase(transport, objectStore, jobQueue, cfg.AWS.UploadPrefix, logger)
	deliveryUC := usecase.NewDeliveryUseCase(predictions, transport, objectStore, logger)

	// ---- Message handler ----
	var handler application.MessageHandler
	switch cfg.Bot.Handler {
	case "echo":
		handler = application.NewDefaultHandler(transport, logger)
	default:
		handler = application.NewObjectDetectionHandler(submissionUC, logger)
	}

	// ---- HTTP server ----
	metrics.MustRegister()
	srv := web.NewServer(handler, deliveryUC, cfg.Bot.Token, logger)
	server := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Server.Port), Handler: srv.Router()}
	go func() {
		logger.Info().Str("addr", server.Addr).Str("handler", cfg.Bot.Handler).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}
