package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/feedline/feedline/config"
	"github.com/feedline/feedline/internal/api"
	"github.com/feedline/feedline/internal/api/handler"
	"github.com/feedline/feedline/internal/cache"
	"github.com/feedline/feedline/internal/render"
	"github.com/feedline/feedline/internal/repository"
	"github.com/feedline/feedline/internal/service"
	"github.com/feedline/feedline/pkg/database"
	"github.com/feedline/feedline/pkg/logger"
	"github.com/feedline/feedline/pkg/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Fatal("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(ctx, cfg.Tracing.Endpoint)
		if err != nil {
			logger.Fatal("tracing init failed", zap.Error(err))
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis ping failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	feeds := service.NewFeedService(postRepo, userRepo, groupRepo, followRepo)
	posts := service.NewPostService(postRepo, commentRepo, groupRepo, cfg.Media.Dir)
	comments := service.NewCommentService(commentRepo, postRepo)
	users := service.NewUserService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	relations := service.NewRelationshipService(followRepo, userRepo)

	renderer, err := render.New()
	if err != nil {
		logger.Fatal("template parse failed", zap.Error(err))
	}
	renderCache := cache.NewRenderCache(rdb, cfg.Cache.IndexTTL)

	h := handler.New(feeds, posts, comments, users, relations, renderer, renderCache, int(cfg.Auth.TokenTTL.Seconds()))
	router := api.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:           cfg.Server.Addr,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("server started", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	_ = rdb.Close()
}
