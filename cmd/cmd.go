package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"national-connect-backend/internal/config"
	"national-connect-backend/internal/handlers"
	"national-connect-backend/internal/repository"
	"national-connect-backend/internal/services"
	"national-connect-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	_ = godotenv.Load()
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Initialize upload storage
	uploadStorage, err := storage.New(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload storage")
	}

	// Initialize the in-memory directory store
	userRepo := repository.NewUserRepository()
	connRepo := repository.NewConnectionRepository()
	photoRepo := repository.NewPhotoRepository()
	msgRepo := repository.NewMessageRepository()

	// Initialize services
	ids := services.UUIDGenerator{}
	userService := services.NewUserService(userRepo, ids)
	connService := services.NewConnectionService(connRepo, userRepo, ids)
	photoService := services.NewPhotoService(photoRepo, userRepo, ids)
	msgService := services.NewMessageService(msgRepo, userRepo, ids)
	statsService := services.NewStatsService(userRepo, connRepo, photoRepo, msgRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	connHandler := handlers.NewConnectionHandler(connService)
	photoHandler := handlers.NewPhotoHandler(photoService, uploadStorage)
	msgHandler := handlers.NewMessageHandler(msgService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/users/register", userHandler.Register)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)

		r.Post("/frequency/connect", connHandler.Connect)
		r.Get("/connections/{userId}", connHandler.ListConnections)

		r.Post("/photos/upload", photoHandler.Upload)
		r.Get("/photos", photoHandler.ListPhotos)
		r.Post("/photos/{id}/like", photoHandler.Like)

		r.Post("/messages/send", msgHandler.Send)
		r.Get("/messages/{userId}", msgHandler.ListMessages)

		r.Get("/stats", statsHandler.GetStats)
	})

	// Serve uploaded photos as static files
	fileServer := http.StripPrefix(storage.PublicPrefix, http.FileServer(http.Dir(uploadStorage.Dir())))
	r.Get(storage.PublicPrefix+"*", fileServer.ServeHTTP)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
