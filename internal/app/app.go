package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"relaybot/internal/bot"
	"relaybot/internal/config"
	"relaybot/internal/models"
	"relaybot/internal/session"
	"relaybot/internal/ticket"
)

// App represents the application
type App struct {
	config *config.Config
	bot    *bot.Bot
	server *http.Server
	logger *zap.Logger

	// Resolved webhook endpoint (webhook mode only)
	webhookURL  string
	webhookPath string
}

// New creates and initializes a new application instance
func New() (*App, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration from environment variables
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	app := &App{config: cfg, logger: logger}

	logger.Info("Starting Support Relay Bot")

	if err := app.initBot(); err != nil {
		return nil, err
	}

	if cfg.WebhookMode() {
		app.webhookURL, app.webhookPath, err = bot.ResolveWebhookEndpoint(cfg.WebhookBaseURL, cfg.WebhookPath, cfg.TelegramToken)
		if err != nil {
			return nil, err
		}
	}

	app.initHTTPServer()

	return app, nil
}

// initBot initializes the Telegram bot with its stores and operator set
func (a *App) initBot() error {
	sessions := session.NewStore()

	tickets, err := ticket.NewStore(0)
	if err != nil {
		return fmt.Errorf("failed to create ticket store: %w", err)
	}

	operators := []models.Operator{
		{ID: a.config.OperatorRUID, Language: models.LanguageRU},
		{ID: a.config.OperatorENID, Language: models.LanguageEN},
	}

	telegramBot, err := bot.NewBot(a.config.TelegramToken, sessions, tickets, operators, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	a.logger.Info("Bot created successfully",
		zap.Int64("operator_ru", a.config.OperatorRUID),
		zap.Int64("operator_en", a.config.OperatorENID),
	)

	a.bot = telegramBot
	return nil
}

// initHTTPServer initializes the HTTP server for health checks and webhook
func (a *App) initHTTPServer() {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	// Webhook endpoint (only registered in webhook mode)
	if a.config.WebhookMode() {
		mux.HandleFunc(a.webhookPath, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}

			var update tgbotapi.Update
			if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
				a.logger.Warn("Error decoding webhook update", zap.Error(err))
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			// Process update in background to respond quickly to Telegram
			go a.bot.HandleUpdate(update)

			w.WriteHeader(http.StatusOK)
		})
	}

	a.server = &http.Server{
		Addr:         ":" + a.config.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start HTTP server in background
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("port", a.config.Port))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
}

// Run starts the application and blocks until shutdown
func (a *App) Run() error {
	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in appropriate mode
	if a.config.WebhookMode() {
		// Webhook mode: reconcile webhook registration and wait for HTTP requests
		a.logger.Info("Starting bot in WEBHOOK mode", zap.String("url", a.webhookURL))
		if err := a.bot.StartWebhook(a.webhookURL); err != nil {
			return fmt.Errorf("failed to setup webhook: %w", err)
		}
		a.logger.Info("Webhook configured", zap.String("path", a.webhookPath))
	} else {
		// Polling mode: actively poll Telegram servers
		go func() {
			if err := a.bot.Start(); err != nil {
				a.logger.Fatal("Failed to start bot", zap.Error(err))
			}
		}()
	}

	// Wait for interrupt signal
	<-sigChan

	a.logger.Info("Shutting down")
	return a.Shutdown()
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	// Shutdown HTTP server gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	a.logger.Info("Shutdown complete")
	_ = a.logger.Sync()
	return nil
}
