package service

import (
	"context"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/repository"
)

// RelationshipService 关注图
type RelationshipService interface {
	// Follow 幂等建边；follower == followee 返回 ErrFollowSelf
	Follow(ctx context.Context, follower *model.User, followeeUsername string) error
	// Unfollow 删边；边不存在时不报错
	Unfollow(ctx context.Context, follower *model.User, followeeUsername string) error
	// IsFollowing 匿名访问者恒为 false，先判身份再查图
	IsFollowing(ctx context.Context, viewer model.Viewer, followeeID string) (bool, error)
	Followees(ctx context.Context, followerID string) ([]*model.User, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, follower *model.User, followeeUsername string) error {
	followee, err := s.userRepo.FindByUsername(ctx, followeeUsername)
	if err != nil {
		return err
	}
	if followee == nil {
		return ErrNotFound
	}
	if follower.ID == followee.ID {
		return ErrFollowSelf
	}
	return s.followRepo.Create(ctx, follower.ID, followee.ID)
}

func (s *relationshipService) Unfollow(ctx context.Context, follower *model.User, followeeUsername string) error {
	followee, err := s.userRepo.FindByUsername(ctx, followeeUsername)
	if err != nil {
		return err
	}
	if followee == nil {
		return ErrNotFound
	}
	return s.followRepo.Delete(ctx, follower.ID, followee.ID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, viewer model.Viewer, followeeID string) (bool, error) {
	if !viewer.IsAuthenticated() {
		return false, nil
	}
	return s.followRepo.Exists(ctx, viewer.User().ID, followeeID)
}

func (s *relationshipService) Followees(ctx context.Context, followerID string) ([]*model.User, error) {
	return s.followRepo.ListFollowees(ctx, followerID)
}
