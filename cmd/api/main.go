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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/astrooutdoor/fence-assistant/backend/internal/config"
	"github.com/astrooutdoor/fence-assistant/backend/internal/handler"
	"github.com/astrooutdoor/fence-assistant/backend/internal/logging"
	"github.com/astrooutdoor/fence-assistant/backend/internal/service/ai"
	chatservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/chat"
	"github.com/astrooutdoor/fence-assistant/backend/internal/service/feed"
	leadservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/lead"
	"github.com/astrooutdoor/fence-assistant/backend/internal/service/notify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(os.Getenv("LOG_DIR"))
	if err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting chat system", zap.String("business", cfg.Business.Name))
	if !cfg.AI.Enabled() {
		logger.Warn("ANTHROPIC_API_KEY not set, chat will answer with fallbacks only")
	}

	store := chatservice.NewStore()
	gateway := ai.NewGateway(cfg.AI, logger)
	composer := ai.Composer{
		Model:       cfg.AI.Model,
		VisionModel: cfg.AI.VisionModel,
		MaxTokens:   cfg.AI.MaxTokens,
	}
	augmenter := chatservice.Augmenter{
		Phone:    cfg.Business.Phone,
		Email:    cfg.Business.Email,
		Facebook: cfg.Business.Facebook,
	}
	orchestrator := chatservice.NewOrchestrator(store, gateway, composer, augmenter, ai.BuildSystemPrompt(cfg.Business), logger)

	recorder, err := leadservice.NewCSVWriter(cfg.Leads.FilePath)
	if err != nil {
		log.Fatalf("failed to prepare leads file: %v", err)
	}

	var mailer leadservice.Mailer
	if cfg.Leads.BrevoAPIKey != "" {
		mailer = notify.NewBrevoMailer(cfg.Leads.BrevoAPIKey, cfg.Leads.BrevoURL, cfg.Business.Name, cfg.Leads.FromEmail, cfg.Leads.NotifyEmail, cfg.Leads.SinkTimeout)
	} else {
		logger.Warn("BREVO_API_KEY not set, skipping lead email notifications")
	}

	var appender leadservice.Appender
	if cfg.Leads.SheetsWebhook != "" {
		appender = notify.NewSheetsAppender(cfg.Leads.SheetsWebhook, cfg.Leads.SinkTimeout)
	} else {
		logger.Warn("SHEETS_WEBHOOK_URL not set, skipping spreadsheet mirroring")
	}

	hub := feed.NewHub(logger)
	leads := leadservice.NewService(recorder, mailer, appender, hub, logger)

	router := handler.NewRouter(cfg, orchestrator, store, leads, hub, logger)

	startServer(ctx, cfg.Server, router, logger)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("fence assistant backend listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
