package handler

import (
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/realtime"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Swap        *SwapHandler
	Chat        *ChatHandler
	Feedback    *FeedbackHandler
	Leaderboard *LeaderboardHandler
	Admin       *AdminHandler
	WS          *WSHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, hub *realtime.Hub, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, logger),
		User:        NewUserHandler(svc.User, svc.Feedback, logger),
		Swap:        NewSwapHandler(svc.Swap, logger),
		Chat:        NewChatHandler(svc.Chat, logger),
		Feedback:    NewFeedbackHandler(svc.Feedback, logger),
		Leaderboard: NewLeaderboardHandler(svc.Leaderboard, svc.Admin, logger),
		Admin:       NewAdminHandler(svc.Admin, svc.Swap, logger),
		WS:          NewWSHandler(hub, svc.Chat, logger),
	}
}
