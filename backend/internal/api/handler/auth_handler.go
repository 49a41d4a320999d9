package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// AuthHandler 认证接口
type AuthHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

// NewAuthHandler 创建认证 Handler
func NewAuthHandler(auth service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register 注册
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.Created(c, resp)
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// Refresh 刷新 Token
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// Logout 登出，当前 Access Token 立即失效
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := GetClaims(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "缺少认证信息")
		return
	}

	if err := h.auth.Logout(c.Request.Context(), claims); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
