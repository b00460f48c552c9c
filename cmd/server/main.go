package main

import (
	"context"
	"ctchen222/Cat-Match/internal/api/controller"
	"ctchen222/Cat-Match/internal/api/repository"
	"ctchen222/Cat-Match/internal/api/service"
	"ctchen222/Cat-Match/internal/config"
	"ctchen222/Cat-Match/internal/db"
	"ctchen222/Cat-Match/internal/hub"
	"ctchen222/Cat-Match/internal/logger"
	"ctchen222/Cat-Match/internal/middleware"
	sessionrepository "ctchen222/Cat-Match/internal/repository"
	"ctchen222/Cat-Match/internal/server"
	"ctchen222/Cat-Match/internal/session"
	"ctchen222/Cat-Match/internal/storage"
	"ctchen222/Cat-Match/internal/telemetry"
	"ctchen222/Cat-Match/internal/web"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "cat-match"

var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, telemetry.Options{
		ServiceName:    serviceName,
		ServiceVersion: version,
		Endpoint:       cfg.OtelEndpoint,
		Stdout:         cfg.OtelStdout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()
	logger.Init(cfg.LogLevel)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize SQLite DB
	DB, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer DB.Close()
	if err := db.InitializeDB(ctx, DB, cfg.Breeds); err != nil {
		return err
	}

	// Initialize Redis, optional
	rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		return err
	}
	var store session.Store
	if rdb != nil {
		defer rdb.Close()
		store = session.NewRedisStore(sessionrepository.NewSessionRepository(rdb), cfg.SessionTTL)
	} else {
		slog.Info("REDIS_ADDR not set, using signed cookie sessions and in-process notifications")
		store = session.NewCookieStore([]byte(cfg.SessionSecret), cfg.SessionTTL)
	}
	sessions := session.NewManager(store, cfg.SessionTTL, !cfg.IsDevelopment())

	photos, err := storage.NewDiskPhotoStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	// Create hub
	hubCtx, stopHub := context.WithCancel(context.Background())
	notifications := hub.NewHub(rdb)
	go notifications.Run(hubCtx)

	// Create repositories
	userRepo := repository.NewUserRepository(DB)
	breedRepo := repository.NewBreedRepository(DB)
	catRepo := repository.NewCatRepository(DB)
	likeRepo := repository.NewLikeRepository(DB)

	// Create services
	userService := service.NewUserService(userRepo)
	catService := service.NewCatService(catRepo, breedRepo, likeRepo, photos)
	likeService := service.NewLikeService(catRepo, likeRepo, notifications)

	renderer, err := web.NewRenderer()
	if err != nil {
		stopHub()
		return err
	}

	srv := server.NewServer(server.Options{
		UploadDir:      cfg.UploadDir,
		AllowedOrigins: cfg.AllowedOrigins,
	}, notifications, server.Controllers{
		Auth:  middleware.NewAuthMiddleware(sessions, userService),
		Users: controller.NewUserController(userService, sessions),
		Cats:  controller.NewCatController(catService),
		Likes: controller.NewLikeController(likeService),
		API:   controller.NewAPIController(catService, DB),
	}, renderer)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(srv.Engine(), serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		stopHub()
		return err
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	stopHub()
	<-notifications.Done()

	slog.Info("Server exiting")
	return nil
}
