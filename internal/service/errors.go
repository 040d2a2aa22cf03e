package service

import "errors"

var (
	// ErrNotFound slug/用户名/帖子 id 无法解析
	ErrNotFound = errors.New("not found")
	// ErrAuthRequired 匿名访问需要认证的操作
	ErrAuthRequired = errors.New("authentication required")
	// ErrNotAuthor 非作者尝试编辑帖子
	ErrNotAuthor = errors.New("viewer is not the author")
	// ErrFollowSelf 自关注，上游逻辑缺陷，调用方不得静默吞掉
	ErrFollowSelf = errors.New("cannot follow self")
	ErrEmptyText  = errors.New("text must not be empty")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
