package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// LeaderboardHandler 排行榜与公告只读接口
type LeaderboardHandler struct {
	leaderboard service.LeaderboardService
	admin       service.AdminService
	logger      *zap.Logger
}

// NewLeaderboardHandler 创建排行榜 Handler
func NewLeaderboardHandler(leaderboard service.LeaderboardService, admin service.AdminService, logger *zap.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, admin: admin, logger: logger}
}

// Get 排行榜
// GET /api/v1/leaderboard
func (h *LeaderboardHandler) Get(c *gin.Context) {
	list, err := h.leaderboard.Get(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}

// Announcements 系统公告列表
// GET /api/v1/announcements
func (h *LeaderboardHandler) Announcements(c *gin.Context) {
	list, err := h.admin.ListAnnouncements(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}
