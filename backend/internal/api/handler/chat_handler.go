package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// ChatHandler 聊天接口
type ChatHandler struct {
	chats  service.ChatService
	logger *zap.Logger
}

// NewChatHandler 创建聊天 Handler
func NewChatHandler(chats service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chats: chats, logger: logger}
}

// History 聊天记录（时间升序）
// GET /api/v1/chats/:id/messages
func (h *ChatHandler) History(c *gin.Context) {
	list, err := h.chats.History(c.Request.Context(), MustGetUserID(c), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}

// Send 发送消息
// POST /api/v1/chats/:id/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParam, "参数错误: "+err.Error())
		return
	}

	resp, err := h.chats.Send(c.Request.Context(), MustGetUserID(c), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.Created(c, resp)
}
