package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/feedline/feedline/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	// ListByPost 帖内评论，新的在前
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *commentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID).Count(&cnt).Error
	return cnt, err
}
