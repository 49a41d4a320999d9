package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// 测试公共夹具

var testLogger = zap.NewNop()

func testFeatureConfig() *config.FeatureConfig {
	return &config.FeatureConfig{
		SingleFeedbackPerRequest: true,
		VerifyThreshold:          3,
		LeaderboardSize:          20,
		LeaderboardCacheTTL:      time.Minute,
	}
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:       "test-secret-key-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

// newTestUser 创建公开用户，Alice 教吉他想学西语风格的最小夹具
func newTestUser(name string, offered, wanted []string) *model.User {
	return &model.User{
		Name:          name,
		Email:         name + "@example.com",
		PasswordHash:  "x",
		Role:          model.RoleUser,
		SkillsOffered: model.StringArray(offered),
		SkillsWanted:  model.StringArray(wanted),
		IsPublic:      true,
	}
}

// newAcceptedSwap 创建一条已接受的交换请求
func newAcceptedSwap(fromUID, fromSkill, toUID, toSkill string) *model.SwapRequest {
	return &model.SwapRequest{
		FromUID:   fromUID,
		ToUID:     toUID,
		FromName:  "from",
		ToName:    "to",
		FromSkill: fromSkill,
		ToSkill:   toSkill,
		Status:    model.StatusAccepted,
	}
}
