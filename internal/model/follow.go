package model

import (
	"time"
)

// Follow 关注关系（follower 关注 followee），两端删除时级联
type Follow struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	FollowerID string `gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	FolloweeID string `gorm:"type:varchar(36);not null;index:idx_follow_pair,unique;check:chk_follow_no_self,follower_id <> followee_id"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (follower_id, followee_id)
	// chk_follow_no_self 在存储层兜底禁止自关注
	Follower  User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee  User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
