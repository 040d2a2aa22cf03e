package service

import (
	"context"
	"strings"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/repository"
)

type CommentService interface {
	// Create 需要已认证访问者；匿名由边界层重定向，这里兜底
	Create(ctx context.Context, viewer model.Viewer, postID int64, text string) (*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *commentService) Create(ctx context.Context, viewer model.Viewer, postID int64, text string) (*model.Comment, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthRequired
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	comment := &model.Comment{
		PostID:   postID,
		AuthorID: viewer.User().ID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
