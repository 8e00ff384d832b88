package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/slack-go/slack"
)

func main() {
	dotEnvErr := loadDotEnv()

	config, err := loadConfig(os.Args[1:])
	if err != nil {
		Fatal("Invalid arguments: %v", err)
	}

	// Initialize logger with configured level
	SetLogLevel(config.LogLevel)

	if dotEnvErr != nil {
		Debug("No .env file loaded, continuing with system env vars: %v", dotEnvErr)
	}

	if config.SlackBotToken == "" {
		Fatal("SLACK_BOT_TOKEN is required")
	}
	if config.SlackSigningSecret == "" {
		Fatal("SLACK_SIGNING_SECRET is required")
	}

	theme, err := loadTheme(config.ThemeFile)
	if err != nil {
		Fatal("Failed to load theme: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup Slack client and resolve our own identity once
	platform := newSlackPlatform(slack.New(config.SlackBotToken))
	botUserID, err := platform.botUserID(ctx)
	if err != nil {
		Fatal("Failed to identify bot user: %v", err)
	}
	Info("Running as Slack user %s with theme %q (:%s:)", botUserID, theme.Keyword, theme.Emoji)

	router := NewRouter(Bot{
		BotUserID: botUserID,
		Theme:     theme,
		Platform:  platform,
	})

	// Relay ingestion is optional
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			Fatal("Failed to connect to Redis: %v", err)
		}
		Info("Connected to Redis")

		go subscribeToRelayedEvents(ctx, rdb, router, config)
	}

	r := mux.NewRouter()
	NewEventsHandler(config.SlackSigningSecret, router).SetupEndpoints(r)

	server := newHTTPServer(config, r)

	go func() {
		Info("Listening on %s", config.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Fatal("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		Error("Graceful shutdown failed: %v", err)
	}
}

func newHTTPServer(config Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              config.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
}
