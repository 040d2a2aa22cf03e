package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/feedline/feedline/internal/model"
)

// LoadViewer 解析会话 cookie 并把访问者身份放进请求上下文；
// token 无效、过期或用户已删除时按匿名处理
func (h *Handler) LoadViewer(c *gin.Context) {
	viewer := model.Anonymous()
	if token, err := c.Cookie(authCookie); err == nil && token != "" {
		if user, err := h.users.ResolveToken(c.Request.Context(), token); err == nil && user != nil {
			viewer = model.Authenticated(user)
		}
	}
	c.Set(viewerKey, viewer)
	c.Next()
}

// RequireAuth 未认证时 302 到登录页，next 指回原地址
func (h *Handler) RequireAuth(c *gin.Context) {
	if !viewerFrom(c).IsAuthenticated() {
		redirectToLogin(c)
		c.Abort()
		return
	}
	c.Next()
}

// RateLimit 按来源 IP 限速（登录接口防爆破）
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(perSecond), burst)
			limiters[ip] = lim
		}
		mu.Unlock()
		if !lim.Allow() {
			c.String(http.StatusTooManyRequests, "Too Many Requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
