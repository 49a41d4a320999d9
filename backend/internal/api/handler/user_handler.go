package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// 头像上传大小上限
const maxAvatarSize = 5 << 20 // 5MB

// UserHandler 用户资料接口
type UserHandler struct {
	users    service.UserService
	feedback service.FeedbackService
	logger   *zap.Logger
}

// NewUserHandler 创建用户 Handler
func NewUserHandler(users service.UserService, feedback service.FeedbackService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, feedback: feedback, logger: logger}
}

// Me 当前用户完整信息
// GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	resp, err := h.users.GetMe(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// UpdateMe 更新个人资料
// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.users.UpdateProfile(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// UploadAvatar 上传头像
// POST /api/v1/users/me/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "缺少 avatar 文件")
		return
	}
	if fileHeader.Size > maxAvatarSize {
		response.BadRequest(c, response.CodeInvalidParam, "头像文件不能超过 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "文件读取失败")
		return
	}
	defer file.Close()

	url, err := h.users.UploadAvatar(c.Request.Context(), MustGetUserID(c), file)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, dto.UploadAvatarResponse{PhotoURL: url})
}

// Browse 浏览公开用户
// GET /api/v1/users
func (h *UserHandler) Browse(c *gin.Context) {
	var req dto.BrowseUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	list, total, err := h.users.Browse(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetProfile 查看他人资料
// GET /api/v1/users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	resp, err := h.users.GetProfile(c.Request.Context(), MustGetUserID(c), MustGetRole(c), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// GetFeedback 查看用户收到的评价
// GET /api/v1/users/:id/feedback
func (h *UserHandler) GetFeedback(c *gin.Context) {
	resp, err := h.feedback.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// SaveProfile 收藏资料（幂等）
// PUT /api/v1/users/:id/save
func (h *UserHandler) SaveProfile(c *gin.Context) {
	if err := h.users.SaveProfile(c.Request.Context(), MustGetUserID(c), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// UnsaveProfile 取消收藏
// DELETE /api/v1/users/:id/save
func (h *UserHandler) UnsaveProfile(c *gin.Context) {
	if err := h.users.UnsaveProfile(c.Request.Context(), MustGetUserID(c), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// ListSaved 我的收藏列表
// GET /api/v1/users/me/saved
func (h *UserHandler) ListSaved(c *gin.Context) {
	list, err := h.users.ListSaved(c.Request.Context(), MustGetUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}
