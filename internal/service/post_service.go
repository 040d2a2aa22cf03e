package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/repository"
	"github.com/feedline/feedline/pkg/logger"
)

// PostDetail 帖子详情页数据
type PostDetail struct {
	Post     *model.Post
	Comments []*model.Comment
}

type PostService interface {
	Create(ctx context.Context, author *model.User, text string, groupID *int64, image *multipart.FileHeader) (*model.Post, error)
	Get(ctx context.Context, id int64) (*PostDetail, error)
	// Edit 仅作者可编辑；其余返回 ErrNotAuthor。created_at 不变
	Edit(ctx context.Context, editor *model.User, id int64, text string, groupID *int64, image *multipart.FileHeader) error
	// Delete 仅作者可删除；评论随帖级联删除
	Delete(ctx context.Context, viewer *model.User, id int64) error
	// Groups 发帖表单的分组候选
	Groups(ctx context.Context) ([]*model.Group, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	groupRepo   repository.GroupRepository
	mediaDir    string
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, groupRepo repository.GroupRepository, mediaDir string) PostService {
	return &postService{postRepo: postRepo, commentRepo: commentRepo, groupRepo: groupRepo, mediaDir: mediaDir}
}

func (s *postService) Groups(ctx context.Context) ([]*model.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *postService) Create(ctx context.Context, author *model.User, text string, groupID *int64, image *multipart.FileHeader) (*model.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	imagePath, err := s.saveImage(image)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		Text:     text,
		AuthorID: author.ID,
		GroupID:  groupID,
		Image:    imagePath,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	logger.Info("post created", zap.Int64("post", post.ID), zap.String("author", author.Username))
	return post, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*PostDetail, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: post, Comments: comments}, nil
}

func (s *postService) Edit(ctx context.Context, editor *model.User, id int64, text string, groupID *int64, image *multipart.FileHeader) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.AuthorID != editor.ID {
		return ErrNotAuthor
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	imagePath, err := s.saveImage(image)
	if err != nil {
		return err
	}
	return s.postRepo.Update(ctx, id, text, groupID, imagePath)
}

func (s *postService) Delete(ctx context.Context, viewer *model.User, id int64) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.AuthorID != viewer.ID {
		return ErrNotAuthor
	}
	return s.postRepo.Delete(ctx, id)
}

// saveImage 落盘到媒体目录，返回相对路径；无上传时返回空串
func (s *postService) saveImage(image *multipart.FileHeader) (string, error) {
	if image == nil {
		return "", nil
	}
	src, err := image.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	rel := filepath.Join("posts", uuid.New().String()+filepath.Ext(image.Filename))
	abs := filepath.Join(s.mediaDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(abs)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return rel, nil
}
