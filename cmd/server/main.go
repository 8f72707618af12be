package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tasheela99/chat-bot/internal/config"
	"github.com/Tasheela99/chat-bot/internal/handlers"
	"github.com/Tasheela99/chat-bot/internal/i18n"
	"github.com/Tasheela99/chat-bot/internal/middleware"
	"github.com/Tasheela99/chat-bot/internal/pipeline"
	"github.com/Tasheela99/chat-bot/internal/services/ai"
	"github.com/Tasheela99/chat-bot/internal/services/cache"
	"github.com/Tasheela99/chat-bot/internal/services/shortcut"
	"github.com/Tasheela99/chat-bot/internal/topics"
	"github.com/Tasheela99/chat-bot/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	envFile := flag.String("env", ".env", "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		// It's okay if .env doesn't exist
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("Starting Government Chatbot API...")

	localizer, err := i18n.NewLocalizer(cfg.I18n.DefaultLanguage, cfg.I18n.Languages)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize i18n")
	}

	registry := topics.NewRegistry()
	log.WithField("topics", len(registry.Topics())).Info("Topic registry loaded")

	llmClient := ai.NewClient(&cfg.LLM, log)

	cacheService, err := cache.NewService(&cfg.Cache, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize cache")
	}

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	metrics := middleware.NewMetrics()

	shortcuts := shortcut.New(localizer)
	assembler := pipeline.NewAssembler(registry, shortcuts, llmClient, cacheService, localizer, metrics, log)

	chatHandler := handlers.NewChatHandler(cfg, assembler, registry, localizer, rateLimiter, metrics, log)

	router := mux.NewRouter()
	chatHandler.RegisterRoutes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}

	log.Info("Server stopped")
}
