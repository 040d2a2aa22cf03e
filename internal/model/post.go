package model

import "time"

// Post 帖子；created_at 创建后不变，排序键 (created_at DESC, id DESC)
// id 自增，时间戳碰撞时以 id 保证全序
type Post struct {
	ID       int64  `gorm:"primaryKey"`
	Text     string `gorm:"type:text;not null"`
	AuthorID string `gorm:"type:varchar(36);index:idx_post_author;not null"`
	// 作者删除时级联删除其帖子
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	// 分组删除时仅置空引用，不级联
	GroupID *int64 `gorm:"index:idx_post_group"`
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	// Image 媒体目录下的相对路径，可为空
	Image     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"index:idx_post_created"`
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }
