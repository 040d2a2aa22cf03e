package model

import "time"

// Comment 评论；随帖子或作者删除级联，帖内按 (created_at DESC, id DESC) 排序
type Comment struct {
	ID        int64  `gorm:"primaryKey"`
	PostID    int64  `gorm:"index:idx_comment_post;not null"`
	Post      Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID  string `gorm:"type:varchar(36);index:idx_comment_author;not null"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
