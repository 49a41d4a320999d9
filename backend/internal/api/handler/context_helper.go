package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/api/middleware"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/jwt"
)

// MustGetUserID 读取认证中间件写入的用户 ID
// 只能在 JWTAuth 之后的 Handler 中调用
func MustGetUserID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

// MustGetRole 读取认证中间件写入的用户角色
func MustGetRole(c *gin.Context) string {
	return c.GetString(middleware.CtxRoleKey)
}

// GetClaims 读取完整 JWT 声明
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(middleware.CtxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
