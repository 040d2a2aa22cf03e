package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/pagination"
	"github.com/feedline/feedline/internal/service"
)

// indexFeed 渲染缓存的 feed_kind
const indexFeed = "index"

type feedPage struct {
	Base
	Page service.PostPage
}

type groupPage struct {
	Base
	Group *model.Group
	Page  service.PostPage
}

type profilePage struct {
	Base
	*service.ProfileFeed
}

// Index 全局流。命中渲染缓存时原样返回存储的字节序列，不再查库；
// 帖子增删不清缓存，陈旧度只由 TTL 限定
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	page := pagination.ParsePage(c.Query("page"))

	if payload, ok := h.cache.Get(ctx, indexFeed, page); ok {
		c.Data(http.StatusOK, contentTypeHTML, payload)
		return
	}

	feed, err := h.feeds.Index(ctx, page)
	if err != nil {
		h.serverError(c, err)
		return
	}
	data := feedPage{Base: h.base(c, "Latest updates"), Page: feed}
	payload, err := h.renderer.Render("index", data)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.cache.Set(ctx, indexFeed, page, payload)
	c.Data(http.StatusOK, contentTypeHTML, payload)
}

// GroupFeed 分组流，总是现算
func (h *Handler) GroupFeed(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	feed, err := h.feeds.Group(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "group", groupPage{
		Base:  h.base(c, feed.Group.Title),
		Group: feed.Group,
		Page:  feed.Page,
	})
}

// ProfileFeed 个人主页流，带关注状态
func (h *Handler) ProfileFeed(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	feed, err := h.feeds.Profile(c.Request.Context(), c.Param("username"), viewerFrom(c), page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "profile", profilePage{
		Base:        h.base(c, feed.Author.Name()),
		ProfileFeed: feed,
	})
}

// FollowingFeed 关注流；路由挂 RequireAuth，这里仍兜底处理 ErrAuthRequired
func (h *Handler) FollowingFeed(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))
	feed, err := h.feeds.Following(c.Request.Context(), viewerFrom(c), page)
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			redirectToLogin(c)
			return
		}
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "follow", feedPage{
		Base: h.base(c, "Following"),
		Page: feed,
	})
}
