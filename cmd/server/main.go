package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arise/hunter/api/internal/config"
	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/handler"
	"github.com/arise/hunter/api/internal/jobs"
	"github.com/arise/hunter/api/internal/middleware"
	"github.com/arise/hunter/api/internal/repository"
	"github.com/arise/hunter/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	questRepo := repository.NewQuestRepository(db)
	battleRepo := repository.NewBattleRepository(db)
	foodLogRepo := repository.NewFoodLogRepository(db)

	// Initialize voice notifier (disabled unless an endpoint is configured)
	var notifier service.Notifier = service.NopNotifier{}
	if cfg.Voice.Endpoint != "" {
		notifier = service.NewVoiceNotifier(cfg.Voice.Endpoint, cfg.Voice.Timeout)
		slog.Info("voice notifier enabled", slog.String("endpoint", cfg.Voice.Endpoint))
	}

	// Initialize services
	playerService := service.NewPlayerService(service.PlayerServiceConfig{
		PlayerRepo: playerRepo,
		Notifier:   notifier,
	})

	questService := service.NewQuestService(service.QuestServiceConfig{
		QuestRepo:  questRepo,
		PlayerRepo: playerRepo,
		Notifier:   notifier,
	})

	battleService := service.NewBattleService(service.BattleServiceConfig{
		BattleRepo: battleRepo,
		PlayerRepo: playerRepo,
		Notifier:   notifier,
	})

	nutritionService := service.NewNutritionService(service.NutritionServiceConfig{
		FoodLogRepo: foodLogRepo,
		PlayerRepo:  playerRepo,
		Notifier:    notifier,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.Server.RateLimit,
		Window: time.Minute,
		Burst:  cfg.Server.RateBurst,
	})
	defer rateLimiter.Stop()

	// Initialize daily quest reset job
	var dailyReset *jobs.DailyResetJob
	if cfg.Jobs.DailyResetEnabled {
		dailyReset = jobs.NewDailyResetJob(questRepo, cfg.Jobs.DailyResetInterval)
		dailyReset.Start()
		defer dailyReset.Stop()
	}

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	playerHandler := handler.NewPlayerHandler(playerService)
	questHandler := handler.NewQuestHandler(questService)
	battleHandler := handler.NewBattleHandler(battleService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Player endpoints
	mux.HandleFunc("GET /v1/players/{name}", playerHandler.GetOrCreate)
	mux.HandleFunc("PUT /v1/players/{id}", playerHandler.Update)
	mux.HandleFunc("POST /v1/players/{id}/stats/allocate", playerHandler.AllocateStat)

	// Quest endpoints
	mux.HandleFunc("GET /v1/quests/{playerId}", questHandler.List)
	mux.HandleFunc("POST /v1/quests", questHandler.Create)
	mux.HandleFunc("PUT /v1/quests/{id}", questHandler.Update)
	mux.HandleFunc("DELETE /v1/quests/{id}", questHandler.Delete)

	// Battle endpoints
	mux.HandleFunc("POST /v1/battles/start", battleHandler.Start)
	mux.HandleFunc("GET /v1/battles/history/{playerId}", battleHandler.History)
	mux.HandleFunc("GET /v1/bosses", battleHandler.Bosses)

	// Nutrition endpoints
	mux.HandleFunc("GET /v1/players/{playerId}/nutrition", nutritionHandler.Today)
	mux.HandleFunc("POST /v1/nutrition", nutritionHandler.Log)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
