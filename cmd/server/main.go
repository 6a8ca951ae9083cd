package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/owlpost/lumos/internal/config"
	"github.com/owlpost/lumos/internal/database"
	"github.com/owlpost/lumos/internal/handler"
	"github.com/owlpost/lumos/internal/jobs"
	"github.com/owlpost/lumos/internal/middleware"
	"github.com/owlpost/lumos/internal/repository"
	"github.com/owlpost/lumos/internal/service"
	"github.com/owlpost/lumos/internal/source"
	"github.com/owlpost/lumos/internal/storage"
	"github.com/owlpost/lumos/pkg/jwt"
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

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize upstream source clients
	wizardingAPI := source.NewWizardingAPI(cfg.Sources.WizardingBaseURL, cfg.Sources.Timeout)
	potionsAPI := source.NewPotionsAPI(cfg.Sources.PotionsBaseURL, cfg.Sources.Timeout)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	cacheRepo := repository.NewCacheRepository(db)
	dailyRepo := repository.NewDailyRepository(db)
	optionsRepo := repository.NewOptionsRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		Tokens:   jwtService,
	})

	catalogService := service.NewCatalogService(service.CatalogServiceConfig{
		Cache:     cacheRepo,
		Wizarding: wizardingAPI,
		Potions:   potionsAPI,
		TTL:       cfg.Sources.CacheTTL,
	})

	dailyService := service.NewDailyService(service.DailyServiceConfig{
		Repo:    dailyRepo,
		Catalog: catalogService,
	})

	commentService := service.NewCommentService(commentRepo)
	profileService := service.NewProfileService(profileRepo)
	optionsService := service.NewOptionsService(optionsRepo)

	// Avatar storage is optional; without a bucket the upload route
	// simply isn't registered.
	var avatarService *service.AvatarService
	if cfg.Avatar.Enabled {
		gcsStore, err := storage.NewGCSStore(ctx, cfg.Avatar.Bucket)
		if err != nil {
			slog.Error("failed to initialize avatar storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = gcsStore.Close() }()
		avatarService = service.NewAvatarService(gcsStore)
	}

	// Seed the options document so the profile form has its choices
	if err := optionsService.EnsureDefaults(ctx); err != nil {
		slog.Warn("failed to seed options", slog.String("error", err.Error()))
	}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Pre-warm today's feature in the background
	dailyRefresher := jobs.NewDailyRefresher(dailyService, cfg.Jobs.DailyRefreshInterval)
	dailyRefresher.Start()
	defer dailyRefresher.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService, profileService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	dailyHandler := handler.NewDailyHandler(dailyService)
	commentHandler := handler.NewCommentHandler(commentService)
	profileHandler := handler.NewProfileHandler(profileService, avatarService)
	optionsHandler := handler.NewOptionsHandler(optionsService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Catalog endpoints (public)
	mux.HandleFunc("GET /v1/characters", catalogHandler.Characters)
	mux.HandleFunc("GET /v1/characters/students", catalogHandler.Students)
	mux.HandleFunc("GET /v1/characters/staff", catalogHandler.Staff)
	mux.HandleFunc("GET /v1/characters/random", catalogHandler.RandomCharacter)
	mux.HandleFunc("GET /v1/characters/{id}", catalogHandler.CharacterByID)
	mux.HandleFunc("GET /v1/spells", catalogHandler.Spells)
	mux.HandleFunc("GET /v1/spells/random", catalogHandler.RandomSpell)
	mux.HandleFunc("GET /v1/potions", catalogHandler.Potions)
	mux.HandleFunc("GET /v1/potions/{id}", catalogHandler.PotionByID)

	// Daily feature endpoint (public)
	mux.HandleFunc("GET /v1/daily", dailyHandler.Feature)

	// Options endpoint (public)
	mux.HandleFunc("GET /v1/options", optionsHandler.Get)

	// Comment endpoints; reads are anonymous, writes require auth
	authMiddleware := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)
	mux.Handle("GET /v1/{kind}/{id}/comments", optionalAuth(http.HandlerFunc(commentHandler.List)))
	mux.Handle("POST /v1/{kind}/{id}/comments", authMiddleware(http.HandlerFunc(commentHandler.Create)))
	mux.Handle("PATCH /v1/comments/{id}", authMiddleware(http.HandlerFunc(commentHandler.Update)))
	mux.Handle("DELETE /v1/comments/{id}", authMiddleware(http.HandlerFunc(commentHandler.Delete)))

	// Profile endpoints (auth required)
	mux.Handle("GET /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PATCH /v1/profile", authMiddleware(http.HandlerFunc(profileHandler.Update)))
	if avatarService != nil {
		mux.Handle("PUT /v1/profile/avatar", authMiddleware(http.HandlerFunc(profileHandler.UploadAvatar)))
	}

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
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
