package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/repository"
)

func setupPostService(t *testing.T) (PostService, CommentService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))

	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	return NewPostService(postRepo, commentRepo, groupRepo, t.TempDir()),
		NewCommentService(commentRepo, postRepo),
		db
}

func seedAuthor(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{ID: username + "-id", Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestCreatePostRequiresText(t *testing.T) {
	posts, _, db := setupPostService(t)
	alice := seedAuthor(t, db, "alice")

	_, err := posts.Create(context.Background(), alice, "   ", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyText)

	post, err := posts.Create(context.Background(), alice, "hello", nil, nil)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
}

func TestEditOnlyByAuthor(t *testing.T) {
	posts, _, db := setupPostService(t)
	ctx := context.Background()
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	post, err := posts.Create(ctx, alice, "original", nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, posts.Edit(ctx, bob, post.ID, "hijacked", nil, nil), ErrNotAuthor)
	assert.ErrorIs(t, posts.Edit(ctx, alice, post.ID, " ", nil, nil), ErrEmptyText)

	require.NoError(t, posts.Edit(ctx, alice, post.ID, "edited", nil, nil))
	detail, err := posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", detail.Post.Text)
}

func TestDeleteOnlyByAuthor(t *testing.T) {
	posts, comments, db := setupPostService(t)
	ctx := context.Background()
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	post, err := posts.Create(ctx, alice, "to delete", nil, nil)
	require.NoError(t, err)
	_, err = comments.Create(ctx, model.Authenticated(bob), post.ID, "bye")
	require.NoError(t, err)

	assert.ErrorIs(t, posts.Delete(ctx, bob, post.ID), ErrNotAuthor)

	require.NoError(t, posts.Delete(ctx, alice, post.ID))
	_, err = posts.Get(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// 评论随帖级联删除
	var cnt int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestCommentValidation(t *testing.T) {
	posts, comments, db := setupPostService(t)
	ctx := context.Background()
	alice := seedAuthor(t, db, "alice")

	post, err := posts.Create(ctx, alice, "a post", nil, nil)
	require.NoError(t, err)

	_, err = comments.Create(ctx, model.Anonymous(), post.ID, "hi")
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = comments.Create(ctx, model.Authenticated(alice), post.ID, "  ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = comments.Create(ctx, model.Authenticated(alice), post.ID+99, "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}
