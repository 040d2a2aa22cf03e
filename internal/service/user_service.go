package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/feedline/feedline/internal/model"
	"github.com/feedline/feedline/internal/repository"
	"github.com/feedline/feedline/pkg/logger"
)

type UserService interface {
	Register(ctx context.Context, username, displayName, email, password string) (*model.User, error)
	// Authenticate 校验口令，失败统一返回 ErrInvalidCredentials
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	IssueToken(user *model.User) (string, error)
	// ResolveToken token 无效或用户已删除时返回 nil
	ResolveToken(ctx context.Context, token string) (*model.User, error)
	// Delete 注销账号；帖子、评论、关注边按外键策略级联删除
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration) UserService {
	return &userService{userRepo: userRepo, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func (s *userService) Register(ctx context.Context, username, displayName, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:          uuid.New().String(),
		Username:    username,
		DisplayName: displayName,
		Email:       email,
		Password:    string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user registered", zap.String("username", username))
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *userService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, nil
	}
	return s.userRepo.FindByID(ctx, claims.Subject)
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info("user deleted", zap.String("username", user.Username))
	return nil
}
