package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
)

// VerifyService 技能认证服务接口
// 认证标准：用户以该技能参与的已接受交换次数达到阈值
type VerifyService interface {
	// Recompute 全量重算用户的认证技能并整体覆盖写回
	// 请求被接受、技能列表修改、管理员移除技能后均需调用
	Recompute(ctx context.Context, uid string) error
}

// verifyService VerifyService 实现
type verifyService struct {
	users     repository.UserRepository
	swaps     repository.SwapRequestRepository
	threshold int
	logger    *zap.Logger
}

// NewVerifyService 创建技能认证服务
func NewVerifyService(users repository.UserRepository, swaps repository.SwapRequestRepository, cfg *config.FeatureConfig, logger *zap.Logger) VerifyService {
	return &verifyService{
		users:     users,
		swaps:     swaps,
		threshold: cfg.VerifyThreshold,
		logger:    logger,
	}
}

func (s *verifyService) Recompute(ctx context.Context, uid string) error {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return err
	}

	// 候选集为当前提供的技能，已从列表移除的技能随之失去认证
	verified := model.StringArray{}
	for _, skill := range user.SkillsOffered {
		count, err := s.swaps.CountAcceptedSkill(ctx, uid, skill)
		if err != nil {
			return err
		}
		if count >= int64(s.threshold) {
			verified = append(verified, skill)
		}
	}

	if err := s.users.UpdateVerifiedSkills(ctx, uid, verified); err != nil {
		return err
	}

	s.logger.Debug("认证技能已重算",
		zap.String("user_id", uid),
		zap.Strings("verified", verified),
	)
	return nil
}
