package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/repository"
)

func setupUserService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))
	return NewUserService(repository.NewUserRepository(db), "test-secret", time.Hour), db
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	users, _ := setupUserService(t)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = users.Register(ctx, "alice", "", "", "otherpassword")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	users, _ := setupUserService(t)
	ctx := context.Background()

	registered, err := users.Register(ctx, "alice", "", "", "password123")
	require.NoError(t, err)

	got, err := users.Authenticate(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, got.ID)

	_, err = users.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 未知用户与错误口令返回同一错误，不泄露账号是否存在
	_, err = users.Authenticate(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	users, _ := setupUserService(t)
	ctx := context.Background()

	user, err := users.Register(ctx, "alice", "", "", "password123")
	require.NoError(t, err)

	token, err := users.IssueToken(user)
	require.NoError(t, err)

	resolved, err := users.ResolveToken(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)

	// 篡改过的 token 按匿名处理
	resolved, err = users.ResolveToken(ctx, token+"x")
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestUserDeleteCascades(t *testing.T) {
	users, db := setupUserService(t)
	ctx := context.Background()

	author, err := users.Register(ctx, "alice", "", "", "password123")
	require.NoError(t, err)
	follower, err := users.Register(ctx, "bob", "", "", "password123")
	require.NoError(t, err)

	post := &model.Post{Text: "gone with me", AuthorID: author.ID}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&model.Comment{PostID: post.ID, AuthorID: follower.ID, Text: "hi"}).Error)
	require.NoError(t, db.Create(&model.Follow{ID: "f1", FollowerID: follower.ID, FolloweeID: author.ID}).Error)

	require.NoError(t, users.Delete(ctx, author.ID))

	var posts, comments, follows int64
	require.NoError(t, db.Model(&model.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&model.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&model.Follow{}).Count(&follows).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, follows)

	assert.ErrorIs(t, users.Delete(ctx, author.ID), ErrNotFound)
}
