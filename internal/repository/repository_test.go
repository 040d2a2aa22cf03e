package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/feedline/feedline/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       id,
		Username: id,
		Email:    id + "@example.com",
		Password: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPost(t *testing.T, db *gorm.DB, author *model.User, text string, createdAt time.Time) *model.Post {
	t.Helper()
	p := &model.Post{Text: text, AuthorID: author.ID, CreatedAt: createdAt}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUsers(t *testing.T, db *gorm.DB, n int) []*model.User {
	t.Helper()
	users := make([]*model.User, n)
	for i := range users {
		users[i] = seedUser(t, db, fmt.Sprintf("u%03d", i))
	}
	return users
}
