package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"linkmark/internal/auth"
	"linkmark/internal/config"
	apphttp "linkmark/internal/http"
	"linkmark/internal/repository"
	"linkmark/internal/repository/postgres"
	"linkmark/internal/repository/sqlite"
	"linkmark/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, userRepo, bookmarkRepo, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}
	defer db.Close()

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := bookmarkRepo.Init(ctx); err != nil {
		logger.Fatalf("init bookmark repository: %v", err)
	}

	issuer := auth.NewTokenIssuer(
		[]byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)
	hasher := auth.NewPasswordHasher()

	authService := service.NewAuthService(userRepo, hasher, issuer)
	userService := service.NewUserService(userRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(authService, userService, bookmarkService, issuer, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*sql.DB, repository.UserRepository, repository.BookmarkRepository, error) {
	if cfg.Database.DSN != "" {
		db, err := postgres.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgres.RunMigrations(ctx, db); err != nil {
			return nil, nil, nil, err
		}
		logger.Info("using postgres storage")
		return db, postgres.NewUserRepository(db), postgres.NewBookmarkRepository(db), nil
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Infof("using sqlite storage at %s", cfg.Database.Path)
	return db, sqlite.NewUserRepository(db), sqlite.NewBookmarkRepository(db), nil
}
