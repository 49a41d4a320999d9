package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// FeedbackHandler 评价接口
type FeedbackHandler struct {
	feedback service.FeedbackService
	logger   *zap.Logger
}

// NewFeedbackHandler 创建评价 Handler
func NewFeedbackHandler(feedback service.FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, logger: logger}
}

// Create 提交评价（仅已接受的交换）
// POST /api/v1/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.feedback.Create(c.Request.Context(), MustGetUserID(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.Created(c, resp)
}
