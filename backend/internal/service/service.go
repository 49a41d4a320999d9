package service

import (
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/realtime"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/jwt"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/upload"
)

// Service 所有业务服务的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Verify      VerifyService
	Swap        SwapService
	Chat        ChatService
	Feedback    FeedbackService
	Leaderboard LeaderboardService
	Admin       AdminService
}

// Deps 服务层外部依赖
// Tokens/Cache 为 nil 表示 Redis 降级，Uploader 为 nil 表示头像上传未配置
type Deps struct {
	JWT       *jwt.Manager
	Tokens    TokenStore
	Cache     SnapshotCache
	Uploader  upload.Uploader
	Publisher realtime.Publisher
}

// NewService 创建服务聚合并完成依赖装配
func NewService(repo *repository.Repository, deps *Deps, cfg *config.Config, logger *zap.Logger) *Service {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = realtime.NopPublisher{}
	}

	verify := NewVerifyService(repo.User, repo.Swap, &cfg.Feature, logger)

	return &Service{
		Auth:        NewAuthService(repo.User, deps.JWT, deps.Tokens, &cfg.Auth, logger),
		User:        NewUserService(repo.User, repo.SavedProfile, verify, deps.Uploader, logger),
		Verify:      verify,
		Swap:        NewSwapService(repo.Swap, repo.User, repo.Audit, verify, publisher, logger),
		Chat:        NewChatService(repo.Chat, repo.Swap, publisher, logger),
		Feedback:    NewFeedbackService(repo.Feedback, repo.Swap, repo.User, &cfg.Feature, logger),
		Leaderboard: NewLeaderboardService(repo.Swap, repo.User, deps.Cache, &cfg.Feature, logger),
		Admin:       NewAdminService(repo.User, repo.Announcement, verify, publisher, logger),
	}
}
