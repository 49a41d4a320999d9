package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// RoomAuthorizer 判断用户是否有权加入房间
// 聊天房间要求用户是会话成员且请求已被接受
type RoomAuthorizer interface {
	CanJoin(ctx context.Context, userID, room string) bool
}

// inbound 客户端上行指令
// action: subscribe | unsubscribe
type inbound struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

// Client Hub 与单个 WebSocket 连接之间的中介
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
	rooms  map[string]bool
	auth   RoomAuthorizer
	logger *zap.Logger
}

// NewClient 创建客户端并注册到 Hub
// 调用方需随后分别启动 ReadPump 与 WritePump
func NewClient(hub *Hub, conn *websocket.Conn, userID string, auth RoomAuthorizer, logger *zap.Logger) *Client {
	client := &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 64),
		userID: userID,
		rooms:  make(map[string]bool),
		auth:   auth,
		logger: logger,
	}
	hub.addClient(client)
	return client
}

// ReadPump 读取上行指令直到连接关闭
func (c *Client) ReadPump() {
	defer func() {
		c.hub.removeClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("连接异常关闭", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}

		var cmd inbound
		if err := json.Unmarshal(raw, &cmd); err != nil {
			continue // 非法指令直接忽略
		}

		switch cmd.Action {
		case "subscribe":
			if cmd.Room == "" {
				continue
			}
			if c.auth != nil && !c.auth.CanJoin(context.Background(), c.userID, cmd.Room) {
				c.logger.Debug("房间订阅被拒绝",
					zap.String("user_id", c.userID),
					zap.String("room", cmd.Room),
				)
				continue
			}
			select {
			case c.hub.subscribe <- subscription{client: c, room: cmd.Room}:
			case <-c.hub.done:
				return
			}
		case "unsubscribe":
			if cmd.Room == "" {
				continue
			}
			select {
			case c.hub.unsubscribe <- subscription{client: c, room: cmd.Room}:
			case <-c.hub.done:
				return
			}
		}
	}
}

// WritePump 将下行事件写入连接，并周期性发送 Ping
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
