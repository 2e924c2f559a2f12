// FamilyBridge - child support preparation server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/familybridge/familybridge/internal/api"
	"github.com/familybridge/familybridge/internal/catalog"
	"github.com/familybridge/familybridge/internal/chat"
	"github.com/familybridge/familybridge/internal/config"
	"github.com/familybridge/familybridge/internal/identity"
	"github.com/familybridge/familybridge/internal/middleware"
	"github.com/familybridge/familybridge/internal/plan"
	"github.com/familybridge/familybridge/internal/scan"
	"github.com/familybridge/familybridge/internal/session"
	"github.com/familybridge/familybridge/internal/store"
	"github.com/familybridge/familybridge/internal/tracker"
	"github.com/familybridge/familybridge/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	roster, err := catalog.Load(cfg.RosterPath)
	if err != nil {
		slog.Error("Failed to load attorney roster", "error", err)
		os.Exit(1)
	}
	slog.Info("Attorney roster loaded", "attorneys", roster.Len())

	// Initialize services.
	sessions := session.NewStore(cfg.SessionTTL)
	analyzer := scan.NewStubAnalyzer(cfg.Sim.ScanDelay)
	checkout := plan.NewCheckout(cfg.Sim.PaymentDelay)
	trk := tracker.NewService(repo)
	sm := chat.NewSessionManager()

	// Initialize handlers.
	apiHandler := api.NewHandler(cfg, repo, sessions, roster, analyzer, checkout, trk)
	chatHandler := chat.NewWebSocketHandler(sessions, sm, chat.DefaultScript(), cfg.Sim, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	apiHandler.RegisterRoutes(r)

	// WebSocket endpoint.
	r.Get("/ws/chat", chatHandler.ServeHTTP)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	// Create server.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // chat connections stay open indefinitely
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
