package model

import "time"

// User 作者身份（认证子系统拥有，其他表以外键引用）
type User struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Username    string `gorm:"type:varchar(64);uniqueIndex:ux_user_username;not null"`
	DisplayName string `gorm:"type:varchar(128)"`
	Email       string `gorm:"type:varchar(255)"`
	// Password 存 bcrypt 哈希
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// Name 展示名，缺省回落到用户名
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
