package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedline/feedline/internal/model"
)

func TestFollowCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, a.ID, b.ID))
	require.NoError(t, repo.Create(ctx, a.ID, b.ID), "second follow must not error")

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt, "duplicate follow must not create a second edge")

	following, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// 有向边：反向不存在
	reverse, err := repo.Exists(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowSelfRejectedByCheckConstraint(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")

	err := repo.Create(ctx, a.ID, a.ID)
	require.Error(t, err, "self follow must fail at the storage layer")

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))

	require.NoError(t, repo.Create(ctx, a.ID, b.ID))
	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))
	following, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestListFolloweesAndCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	users := seedUsers(t, db, 4)

	require.NoError(t, repo.Create(ctx, users[0].ID, users[1].ID))
	require.NoError(t, repo.Create(ctx, users[0].ID, users[2].ID))
	require.NoError(t, repo.Create(ctx, users[3].ID, users[0].ID))

	followees, err := repo.ListFollowees(ctx, users[0].ID)
	require.NoError(t, err)
	ids := make([]string, len(followees))
	for i, u := range followees {
		ids[i] = u.ID
	}
	assert.ElementsMatch(t, []string{users[1].ID, users[2].ID}, ids)

	followers, err := repo.CountFollowers(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers)

	following, err := repo.CountFollowees(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), following)
}

func TestFollowEdgesCascadeWithEndpoints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, a.ID, b.ID))
	require.NoError(t, userRepo.Delete(ctx, b.ID))

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.Zero(t, cnt, "deleting an endpoint must remove its follow edges")
}
