package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/feedline/feedline/internal/model"
)

// feedOrder 信息流全序：created_at 相同再比 id，重复读取结果逐字节一致
const feedOrder = "created_at DESC, id DESC"

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	// Update 仅更新可编辑字段，created_at 不变
	Update(ctx context.Context, id int64, text string, groupID *int64, image string) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*model.Post, error)
	ListByGroup(ctx context.Context, groupID int64) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []string) ([]*model.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Update(ctx context.Context, id int64, text string, groupID *int64, image string) error {
	updates := map[string]any{
		"text":     text,
		"group_id": groupID,
	}
	if image != "" {
		updates["image"] = image
	}
	return r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(updates).Error
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) ListAll(ctx context.Context) ([]*model.Post, error) {
	var res []*model.Post
	err := r.feedQuery(ctx).Find(&res).Error
	return res, err
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID int64) ([]*model.Post, error) {
	var res []*model.Post
	err := r.feedQuery(ctx).Where("group_id = ?", groupID).Find(&res).Error
	return res, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	var res []*model.Post
	err := r.feedQuery(ctx).Where("author_id = ?", authorID).Find(&res).Error
	return res, err
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []string) ([]*model.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var res []*model.Post
	err := r.feedQuery(ctx).Where("author_id IN ?", authorIDs).Find(&res).Error
	return res, err
}

func (r *postRepository) feedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Post{}).
		Preload("Author").
		Preload("Group").
		Order(feedOrder)
}
