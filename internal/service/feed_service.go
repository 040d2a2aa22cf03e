package service

import (
	"context"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/pagination"
	"github.com/feedline/feedline/internal/repository"
)

// PostPage 帖子分页
type PostPage = pagination.Page[*model.Post]

// GroupFeed 分组流及其分组
type GroupFeed struct {
	Group *model.Group
	Page  PostPage
}

// ProfileFeed 个人主页流；Following/IsOwner 仅供界面使用，不影响排序
type ProfileFeed struct {
	Author        *model.User
	Page          PostPage
	Following     bool
	IsOwner       bool
	FollowerCount int64
	FolloweeCount int64
}

// FeedService 组装四种信息流，统一 (created_at DESC, id DESC) 全序；
// 相同快照下重复调用结果一致
type FeedService interface {
	Index(ctx context.Context, page int) (PostPage, error)
	Group(ctx context.Context, slug string, page int) (*GroupFeed, error)
	Profile(ctx context.Context, username string, viewer model.Viewer, page int) (*ProfileFeed, error)
	// Following 关注流，匿名返回 ErrAuthRequired
	Following(ctx context.Context, viewer model.Viewer, page int) (PostPage, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
}

func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
) FeedService {
	return &feedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
	}
}

func (s *feedService) Index(ctx context.Context, page int) (PostPage, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return PostPage{}, err
	}
	return pagination.Paginate(posts, pagination.FeedPageSize, page), nil
}

func (s *feedService) Group(ctx context.Context, slug string, page int) (*GroupFeed, error) {
	group, err := s.groupRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}
	posts, err := s.postRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return &GroupFeed{
		Group: group,
		Page:  pagination.Paginate(posts, pagination.FeedPageSize, page),
	}, nil
}

func (s *feedService) Profile(ctx context.Context, username string, viewer model.Viewer, page int) (*ProfileFeed, error) {
	author, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	// 匿名不查关注图，关注状态恒为 false
	following := false
	isOwner := false
	if viewer.IsAuthenticated() {
		isOwner = viewer.User().ID == author.ID
		if !isOwner {
			following, err = s.followRepo.Exists(ctx, viewer.User().ID, author.ID)
			if err != nil {
				return nil, err
			}
		}
	}

	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	followees, err := s.followRepo.CountFollowees(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &ProfileFeed{
		Author:        author,
		Page:          pagination.Paginate(posts, pagination.FeedPageSize, page),
		Following:     following,
		IsOwner:       isOwner,
		FollowerCount: followers,
		FolloweeCount: followees,
	}, nil
}

func (s *feedService) Following(ctx context.Context, viewer model.Viewer, page int) (PostPage, error) {
	if !viewer.IsAuthenticated() {
		return PostPage{}, ErrAuthRequired
	}
	followees, err := s.followRepo.ListFollowees(ctx, viewer.User().ID)
	if err != nil {
		return PostPage{}, err
	}
	ids := make([]string, len(followees))
	for i, u := range followees {
		ids[i] = u.ID
	}
	posts, err := s.postRepo.ListByAuthors(ctx, ids)
	if err != nil {
		return PostPage{}, err
	}
	return pagination.Paginate(posts, pagination.FeedPageSize, page), nil
}
