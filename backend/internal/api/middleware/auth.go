package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/jwt"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// gin 上下文键
const (
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
	CtxClaimsKey = "claims"
)

// JWTAuth JWT 认证中间件
// 校验 Bearer Access Token，黑名单命中即拒绝
// tokens 为 nil 时跳过黑名单检查（Redis 降级）
func JWTAuth(jwtMgr *jwt.Manager, tokens service.TokenStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, response.CodeUnauthorized, "缺少认证信息")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, response.CodeUnauthorized, "认证格式错误")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, response.CodeUnauthorized, err.Error())
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, response.CodeUnauthorized, "token 类型错误")
			c.Abort()
			return
		}

		if tokens != nil {
			blacklisted, err := tokens.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("黑名单查询失败", zap.Error(err))
				response.InternalError(c)
				c.Abort()
				return
			}
			if blacklisted {
				response.Unauthorized(c, response.CodeUnauthorized, "token 已失效")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxRoleKey, claims.Role)
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}

// RoleAuth 角色鉴权中间件，需在 JWTAuth 之后使用
func RoleAuth(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(CtxRoleKey)
		if !allowed[role] {
			response.Forbidden(c, response.CodeForbidden, "无权访问该资源")
			c.Abort()
			return
		}
		c.Next()
	}
}
