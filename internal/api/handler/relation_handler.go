package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedline/feedline/internal/service"
)

// Follow 建立关注边后跳回作者主页。ErrFollowSelf 不吞掉：
// 界面不会给自己渲染关注按钮，走到这里说明上游有缺陷
func (h *Handler) Follow(c *gin.Context) {
	username := c.Param("username")
	err := h.relations.Follow(c.Request.Context(), viewerFrom(c).User(), username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

// Unfollow 删边；边本就不存在时同样跳回主页
func (h *Handler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	err := h.relations.Unfollow(c.Request.Context(), viewerFrom(c).User(), username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
