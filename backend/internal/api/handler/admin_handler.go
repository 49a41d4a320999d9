package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// AdminHandler 管理接口，路由层已限制 admin 角色
type AdminHandler struct {
	admin  service.AdminService
	swaps  service.SwapService
	logger *zap.Logger
}

// NewAdminHandler 创建管理 Handler
func NewAdminHandler(admin service.AdminService, swaps service.SwapService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, swaps: swaps, logger: logger}
}

// ListUsers 用户列表（含私密与封禁用户）
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req dto.AdminUserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	list, total, err := h.admin.ListUsers(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// BanUser 封禁/解封用户
// PUT /api/v1/admin/users/:id/ban
func (h *AdminHandler) BanUser(c *gin.Context) {
	var req dto.BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	if err := h.admin.SetBanned(c.Request.Context(), c.Param("id"), req.Banned); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// RemoveSkill 移除用户技能（内容审核）
// POST /api/v1/admin/users/:id/skills/remove
func (h *AdminHandler) RemoveSkill(c *gin.Context) {
	var req dto.RemoveSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	if err := h.admin.RemoveSkill(c.Request.Context(), c.Param("id"), &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

// ListSwaps 全量请求列表（监控/仲裁）
// GET /api/v1/admin/swaps
func (h *AdminHandler) ListSwaps(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	list, total, err := h.swaps.ListAllForAdmin(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// OverrideStatus 改写请求状态（留审计）
// PUT /api/v1/admin/swaps/:id/status
func (h *AdminHandler) OverrideStatus(c *gin.Context) {
	var req dto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.swaps.OverrideStatus(c.Request.Context(), MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// ListAudits 请求状态改写记录
// GET /api/v1/admin/swaps/:id/audits
func (h *AdminHandler) ListAudits(c *gin.Context) {
	list, err := h.swaps.ListAudits(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}

// CreateAnnouncement 发布公告
// POST /api/v1/admin/announcements
func (h *AdminHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.admin.CreateAnnouncement(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.Created(c, resp)
}

// ExportUsers 导出用户数据（xlsx）
// GET /api/v1/admin/export/users
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	data, err := h.admin.ExportUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("users_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
