package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/realtime"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
)

// WSHandler WebSocket 接入点
type WSHandler struct {
	hub      *realtime.Hub
	chats    service.ChatService
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewWSHandler 创建 WebSocket Handler
// 跨域检查由 CORS 中间件承担，这里放行所有 Origin
func NewWSHandler(hub *realtime.Hub, chats service.ChatService, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:   hub,
		chats: chats,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve 升级连接并接入推送中心
// GET /api/v1/ws（需 JWTAuth）
// 连接后自动加入个人房间与广播房间，聊天房间需显式 subscribe
func (h *WSHandler) Serve(c *gin.Context) {
	uid := MustGetUserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket 升级失败", zap.Error(err))
		return
	}

	client := realtime.NewClient(h.hub, conn, uid, h.chats, h.logger)
	go client.WritePump()
	go client.ReadPump()
}
