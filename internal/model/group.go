package model

import "time"

// Group 帖子分组；slug 唯一且按约定不可变
type Group struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(64);uniqueIndex:ux_group_slug;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Group) TableName() string { return "groups" }
