package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/api/handler"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/api/middleware"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/jwt"
)

// 请求体大小上限，头像走 multipart 另有 5MB 限制
const maxBodySize = 10 << 20 // 10MB

// Deps 路由装配依赖
type Deps struct {
	JWT     *jwt.Manager
	Tokens  service.TokenStore
	Limiter middleware.RateLimiter
}

// New 装配全部路由与中间件
func New(cfg *config.Config, h *handler.Handler, deps *Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(&cfg.Server.CORS),
		middleware.BodyLimit(maxBodySize),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// 认证接口对暴力尝试限流
	authLimit := middleware.RateLimit(deps.Limiter, 10, time.Minute, logger)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authLimit, h.Auth.Register)
		auth.POST("/login", authLimit, h.Auth.Login)
		auth.POST("/refresh", authLimit, h.Auth.Refresh)
	}

	// 公开只读接口
	api.GET("/leaderboard", h.Leaderboard.Get)
	api.GET("/announcements", h.Leaderboard.Announcements)

	// 登录后接口
	authed := api.Group("", middleware.JWTAuth(deps.JWT, deps.Tokens, logger))
	{
		authed.POST("/auth/logout", h.Auth.Logout)

		// 个人资料
		authed.GET("/me", h.User.Me)
		authed.PATCH("/me", h.User.UpdateMe)
		authed.POST("/me/avatar", h.User.UploadAvatar)
		authed.GET("/me/saved", h.User.ListSaved)

		// 用户浏览
		authed.GET("/users", h.User.Browse)
		authed.GET("/users/:id", h.User.GetProfile)
		authed.GET("/users/:id/feedback", h.User.GetFeedback)
		authed.PUT("/users/:id/save", h.User.SaveProfile)
		authed.DELETE("/users/:id/save", h.User.UnsaveProfile)

		// 交换请求
		authed.POST("/swaps", h.Swap.Create)
		authed.GET("/swaps", h.Swap.List)
		authed.GET("/swaps/:id", h.Swap.Get)
		authed.POST("/swaps/:id/respond", h.Swap.Respond)
		authed.DELETE("/swaps/:id", h.Swap.Delete)

		// 聊天
		authed.GET("/chats/:id/messages", h.Chat.History)
		authed.POST("/chats/:id/messages", h.Chat.Send)

		// 评价
		authed.POST("/feedback", h.Feedback.Create)

		// 实时推送
		authed.GET("/ws", h.WS.Serve)

		// 管理端
		admin := authed.Group("/admin", middleware.RoleAuth(model.RoleAdmin))
		{
			admin.GET("/users", h.Admin.ListUsers)
			admin.GET("/export/users", h.Admin.ExportUsers)
			admin.PUT("/users/:id/ban", h.Admin.BanUser)
			admin.POST("/users/:id/skills/remove", h.Admin.RemoveSkill)
			admin.GET("/swaps", h.Admin.ListSwaps)
			admin.PUT("/swaps/:id/status", h.Admin.OverrideStatus)
			admin.GET("/swaps/:id/audits", h.Admin.ListAudits)
			admin.POST("/announcements", h.Admin.CreateAnnouncement)
		}
	}

	return r
}
