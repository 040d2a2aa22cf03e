package api

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/feedline/feedline/config"
	"github.com/feedline/feedline/internal/api/handler"
	"github.com/feedline/feedline/pkg/logger"
)

// NewRouter 组装中间件与路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware("feedline"))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(accessLog())
	r.Use(h.LoadViewer)

	r.Static("/media", cfg.Media.Dir)

	r.GET("/", h.Index)
	r.GET("/group/:slug/", h.GroupFeed)
	r.GET("/profile/:username/", h.ProfileFeed)
	r.GET("/profile/:username/follow/", h.RequireAuth, h.Follow)
	r.GET("/profile/:username/unfollow/", h.RequireAuth, h.Unfollow)
	r.GET("/posts/:id/", h.PostDetail)
	r.POST("/posts/:id/comment/", h.RequireAuth, h.AddComment)
	r.GET("/posts/:id/edit/", h.EditPost)
	r.POST("/posts/:id/edit/", h.EditPost)
	r.GET("/create/", h.RequireAuth, h.CreatePost)
	r.POST("/create/", h.RequireAuth, h.CreatePost)
	r.GET("/follow/", h.RequireAuth, h.FollowingFeed)

	auth := r.Group("/auth")
	{
		auth.GET("/signup/", h.Signup)
		auth.POST("/signup/", h.Signup)
		auth.GET("/login/", h.Login)
		auth.POST("/login/", handler.RateLimit(cfg.Login.RatePerSecond, cfg.Login.Burst), h.Login)
		auth.GET("/logout/", h.Logout)
	}

	r.NoRoute(h.NotFound)
	return r
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}
