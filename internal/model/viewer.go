package model

// Viewer 请求方身份：匿名或已认证作者。
// 关注/信息流逻辑先按 IsAuthenticated 分支，再查关注图；
// 匿名访问者对任何作者的关注状态恒为 false。
type Viewer struct {
	user *User
}

// Anonymous 匿名访问者
func Anonymous() Viewer { return Viewer{} }

// Authenticated 已认证访问者
func Authenticated(u *User) Viewer { return Viewer{user: u} }

func (v Viewer) IsAuthenticated() bool { return v.user != nil }

// User 已认证时返回作者，匿名返回 nil
func (v Viewer) User() *User { return v.user }
