package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/service"
)

type postDetailPage struct {
	Base
	Post     *model.Post
	Comments []*model.Comment
	IsOwner  bool
}

type postFormPage struct {
	Base
	IsEdit    bool
	Text      string
	GroupID   int64 // 0 表示未选分组
	Groups    []*model.Group
	FormError string
}

func postPath(id int64) string {
	return fmt.Sprintf("/posts/%d/", id)
}

// PostDetail 单帖详情 + 评论列表 + 评论表单
func (h *Handler) PostDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.NotFound(c)
		return
	}
	detail, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	viewer := viewerFrom(c)
	isOwner := viewer.IsAuthenticated() && viewer.User().ID == detail.Post.AuthorID
	h.html(c, http.StatusOK, "post_detail", postDetailPage{
		Base:     h.base(c, "Post by "+detail.Post.Author.Name()),
		Post:     detail.Post,
		Comments: detail.Comments,
		IsOwner:  isOwner,
	})
}

// AddComment 发表评论；路由挂 RequireAuth，匿名在中间件已被重定向到登录页。
// 无论成败都回到帖子页
func (h *Handler) AddComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.NotFound(c)
		return
	}
	text := c.PostForm("text")
	if _, err := h.comments.Create(c.Request.Context(), viewerFrom(c), id, text); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			h.NotFound(c)
			return
		case errors.Is(err, service.ErrAuthRequired):
			redirectToLogin(c)
			return
		case errors.Is(err, service.ErrEmptyText):
			// 空评论不落库，照旧回帖子页
		default:
			h.serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, postPath(id))
}

// CreatePost 发帖；成功后跳到作者主页
func (h *Handler) CreatePost(c *gin.Context) {
	viewer := viewerFrom(c)
	groups, err := h.posts.Groups(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	if c.Request.Method != http.MethodPost {
		h.html(c, http.StatusOK, "post_form", postFormPage{
			Base:   h.base(c, "New post"),
			Groups: groups,
		})
		return
	}

	text := c.PostForm("text")
	groupID := parseGroupID(c.PostForm("group"))
	image := formFile(c, "image")

	if _, err := h.posts.Create(c.Request.Context(), viewer.User(), text, groupID, image); err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			h.html(c, http.StatusOK, "post_form", postFormPage{
				Base:      h.base(c, "New post"),
				Groups:    groups,
				Text:      text,
				GroupID:   groupIDValue(groupID),
				FormError: "Text must not be empty.",
			})
			return
		}
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+viewer.User().Username+"/")
}

// EditPost 编辑；非作者（含匿名）一律跳回帖子页，不报错
func (h *Handler) EditPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.NotFound(c)
		return
	}
	viewer := viewerFrom(c)

	detail, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	if !viewer.IsAuthenticated() || viewer.User().ID != detail.Post.AuthorID {
		c.Redirect(http.StatusFound, postPath(id))
		return
	}

	groups, err := h.posts.Groups(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	if c.Request.Method != http.MethodPost {
		h.html(c, http.StatusOK, "post_form", postFormPage{
			Base:    h.base(c, "Edit post"),
			IsEdit:  true,
			Text:    detail.Post.Text,
			GroupID: groupIDValue(detail.Post.GroupID),
			Groups:  groups,
		})
		return
	}

	text := c.PostForm("text")
	groupID := parseGroupID(c.PostForm("group"))
	image := formFile(c, "image")

	if err := h.posts.Edit(c.Request.Context(), viewer.User(), id, text, groupID, image); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthor):
			c.Redirect(http.StatusFound, postPath(id))
			return
		case errors.Is(err, service.ErrEmptyText):
			h.html(c, http.StatusOK, "post_form", postFormPage{
				Base:      h.base(c, "Edit post"),
				IsEdit:    true,
				Text:      text,
				GroupID:   groupIDValue(groupID),
				Groups:    groups,
				FormError: "Text must not be empty.",
			})
			return
		default:
			h.serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, postPath(id))
}

func parseGroupID(s string) *int64 {
	if s == "" {
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

func groupIDValue(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func formFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}
