package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feedline/feedline/internal/cache"
	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/render"
	"github.com/feedline/feedline/internal/service"
	"github.com/feedline/feedline/pkg/logger"
)

const (
	authCookie      = "feedline_token"
	contentTypeHTML = "text/html; charset=utf-8"
	viewerKey       = "viewer"
)

type Handler struct {
	feeds     service.FeedService
	posts     service.PostService
	comments  service.CommentService
	users     service.UserService
	relations service.RelationshipService
	renderer  *render.Renderer
	cache     *cache.RenderCache
	tokenTTL  int // cookie max-age, seconds
}

func New(
	feeds service.FeedService,
	posts service.PostService,
	comments service.CommentService,
	users service.UserService,
	relations service.RelationshipService,
	renderer *render.Renderer,
	renderCache *cache.RenderCache,
	tokenTTLSeconds int,
) *Handler {
	return &Handler{
		feeds:     feeds,
		posts:     posts,
		comments:  comments,
		users:     users,
		relations: relations,
		renderer:  renderer,
		cache:     renderCache,
		tokenTTL:  tokenTTLSeconds,
	}
}

// Base 所有页面共有的视图数据；PagePath 供分页链接拼接
type Base struct {
	Title    string
	Viewer   model.Viewer
	PagePath string
}

func (h *Handler) base(c *gin.Context, title string) Base {
	return Base{Title: title, Viewer: viewerFrom(c), PagePath: c.Request.URL.Path}
}

func viewerFrom(c *gin.Context) model.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if viewer, ok := v.(model.Viewer); ok {
			return viewer
		}
	}
	return model.Anonymous()
}

func (h *Handler) html(c *gin.Context, status int, page string, data any) {
	payload, err := h.renderer.Render(page, data)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.Data(status, contentTypeHTML, payload)
}

// NotFound 自定义 404 页，挂在 NoRoute 上
func (h *Handler) NotFound(c *gin.Context) {
	h.html(c, http.StatusNotFound, "not_found", h.base(c, "Page not found"))
}

func (h *Handler) serverError(c *gin.Context, err error) {
	logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.String(http.StatusInternalServerError, "Internal Server Error")
	c.Abort()
}

// redirectToLogin 重定向到登录页并带上原始目标
func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/auth/login/?next="+next)
}
