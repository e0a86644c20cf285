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

	"github.com/inbucks/inbucks/internal/api/controller"
	"github.com/inbucks/inbucks/internal/api/repository"
	"github.com/inbucks/inbucks/internal/api/service"
	"github.com/inbucks/inbucks/internal/config"
	"github.com/inbucks/inbucks/internal/db"
	"github.com/inbucks/inbucks/internal/logger"
	"github.com/inbucks/inbucks/internal/server"
	"github.com/inbucks/inbucks/internal/session"
	"github.com/inbucks/inbucks/internal/telemetry"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.InitSchema(pool); err != nil {
		log.Fatalf("failed to initialize sqlite schema: %v", err)
	}

	// Select the session backend
	var sessions session.Store
	switch cfg.SessionBackend {
	case "memory":
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	default:
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("failed to initialize redis: %v", err)
		}
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	offerRepo := repository.NewOfferRepository(pool)
	txRepo := repository.NewTransactionRepository(pool)

	// Create services
	authService := service.NewAuthService(userRepo)
	offerService := service.NewOfferService(offerRepo)
	txService := service.NewTransactionService(offerRepo, txRepo)

	// Create controllers
	authController := controller.NewAuthController(authService, sessions, controller.CookieSettings{
		Name:   cfg.CookieName,
		TTL:    cfg.SessionTTL,
		Secure: cfg.IsProduction(),
	})
	offerController := controller.NewOfferController(offerService)
	txController := controller.NewTransactionController(txService)

	// Create the Gin-based server
	srv, err := server.NewServer(server.Deps{
		Auth:         authController,
		Offers:       offerController,
		Transactions: txController,
		Sessions:     sessions,
		Users:        userRepo,
		CookieName:   cfg.CookieName,
	})
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
