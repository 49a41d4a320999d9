package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// SwapHandler 交换请求接口
type SwapHandler struct {
	swaps  service.SwapService
	logger *zap.Logger
}

// NewSwapHandler 创建交换请求 Handler
func NewSwapHandler(swaps service.SwapService, logger *zap.Logger) *SwapHandler {
	return &SwapHandler{swaps: swaps, logger: logger}
}

// Create 发起交换请求
// POST /api/v1/swaps
func (h *SwapHandler) Create(c *gin.Context) {
	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.swaps.Create(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.Created(c, resp)
}

// Get 查看单个请求（仅双方或管理员）
// GET /api/v1/swaps/:id
func (h *SwapHandler) Get(c *gin.Context) {
	resp, err := h.swaps.Get(c.Request.Context(), MustGetUserID(c), MustGetRole(c), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// List 我的请求列表
// GET /api/v1/swaps
func (h *SwapHandler) List(c *gin.Context) {
	var req dto.SwapListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	list, total, err := h.swaps.List(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Respond 响应请求（仅接收方）
// POST /api/v1/swaps/:id/respond
func (h *SwapHandler) Respond(c *gin.Context) {
	var req dto.RespondSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.swaps.Respond(c.Request.Context(), MustGetUserID(c), c.Param("id"), req.Decision)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// Delete 删除请求（双方或管理员，软删除）
// DELETE /api/v1/swaps/:id
func (h *SwapHandler) Delete(c *gin.Context) {
	if err := h.swaps.Delete(c.Request.Context(), MustGetUserID(c), MustGetRole(c), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
