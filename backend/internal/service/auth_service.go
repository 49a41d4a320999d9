package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/jwt"
)

// TokenStore Token 黑名单存储
// 由 Redis 实现，Redis 不可用时可传 nil 降级运行（登出不再即时生效）
type TokenStore interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthService 认证服务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// authService AuthService 实现
type authService struct {
	users  repository.UserRepository
	jwtMgr *jwt.Manager
	tokens TokenStore
	cfg    *config.AuthConfig
	logger *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(users repository.UserRepository, jwtMgr *jwt.Manager, tokens TokenStore, cfg *config.AuthConfig, logger *zap.Logger) AuthService {
	return &authService{
		users:  users,
		jwtMgr: jwtMgr,
		tokens: tokens,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	// 邮箱唯一性检查
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsPublic:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("用户注册成功",
		zap.String("user_id", user.UserID),
		zap.String("email", user.Email),
	)

	return s.issueTokens(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	if user.IsBanned {
		return nil, ErrUserBanned
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidToken
	}

	if s.tokens != nil {
		blacklisted, err := s.tokens.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if blacklisted {
			return nil, ErrInvalidToken
		}
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if user.IsBanned {
		return nil, ErrUserBanned
	}

	// 旧 Refresh Token 作废，实现轮换
	if s.tokens != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := s.tokens.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			s.logger.Warn("旧 Refresh Token 拉黑失败", zap.Error(err))
		}
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.tokens == nil {
		return nil // 降级模式下登出仅依赖客户端丢弃 Token
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.tokens.BlacklistToken(ctx, claims.ID, ttl)
}

func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}
