package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/feedline/feedline/internal/service"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,64}$`)

func init() {
	// 用户名规则挂到 gin 的 binding 校验器上
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
	}
}

type signupForm struct {
	Username    string `form:"username" binding:"required,username"`
	DisplayName string `form:"display_name" binding:"max=128"`
	Email       string `form:"email" binding:"omitempty,email"`
	Password    string `form:"password" binding:"required,min=8"`
}

type authPage struct {
	Base
	Next      string
	FormError string
}

// Signup 注册；成功后直接登录并回首页
func (h *Handler) Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.html(c, http.StatusOK, "signup", authPage{Base: h.base(c, "Sign up")})
		return
	}

	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		h.html(c, http.StatusOK, "signup", authPage{
			Base:      h.base(c, "Sign up"),
			FormError: "Please check the form: username is 3-64 letters, digits or _.-, password at least 8 characters.",
		})
		return
	}

	user, err := h.users.Register(c.Request.Context(), form.Username, form.DisplayName, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.html(c, http.StatusOK, "signup", authPage{
				Base:      h.base(c, "Sign up"),
				FormError: "That username is already taken.",
			})
			return
		}
		h.serverError(c, err)
		return
	}

	token, err := h.users.IssueToken(user)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.setAuthCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

// Login 登录；next 指回进入登录页前的目标
func (h *Handler) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.html(c, http.StatusOK, "login", authPage{
			Base: h.base(c, "Log in"),
			Next: c.Query("next"),
		})
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")
	next := c.PostForm("next")

	user, err := h.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.html(c, http.StatusOK, "login", authPage{
				Base:      h.base(c, "Log in"),
				Next:      next,
				FormError: "Wrong username or password.",
			})
			return
		}
		h.serverError(c, err)
		return
	}

	token, err := h.users.IssueToken(user)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.setAuthCookie(c, token)
	c.Redirect(http.StatusFound, safeNext(next))
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(authCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookie, token, h.tokenTTL, "/", "", false, true)
}

// safeNext 只接受站内相对路径，避免开放重定向
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
