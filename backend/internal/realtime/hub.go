package realtime

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// 实时事件类型
const (
	EventChatMessage   = "chat.message"
	EventRequestStatus = "request.status"
	EventAnnouncement  = "announcement"
)

// BroadcastRoom 全员广播房间，客户端连接后自动加入
const BroadcastRoom = "broadcast"

// UserRoom 用户私有房间名，用于请求状态等定向推送
func UserRoom(uid string) string { return "user:" + uid }

// ChatRoom 聊天房间名
func ChatRoom(chatID string) string { return "chat:" + chatID }

// ParseChatRoom 从房间名解析聊天会话 ID
func ParseChatRoom(room string) (string, bool) {
	const prefix = "chat:"
	if len(room) <= len(prefix) || room[:len(prefix)] != prefix {
		return "", false
	}
	return room[len(prefix):], true
}

// Event 推送给客户端的事件信封
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Publisher 实时事件发布接口，业务层只依赖该接口
type Publisher interface {
	Publish(room string, eventType string, data any)
}

// NopPublisher 空实现，用于测试或实时推送关闭的场景
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, any) {}

// subscription 订阅/退订指令
type subscription struct {
	client *Client
	room   string
}

// envelope 待投递的房间消息
type envelope struct {
	room string
	data []byte
}

// Hub 管理所有 WebSocket 连接与房间成员关系
// 全部状态只在 Run 协程内读写，对外通过 channel 交互
type Hub struct {
	clients     map[*Client]bool
	rooms       map[string]map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	subscribe   chan subscription
	unsubscribe chan subscription
	broadcast   chan envelope
	done        chan struct{}
	logger      *zap.Logger
}

// NewHub 创建 Hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		rooms:       make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan subscription),
		unsubscribe: make(chan subscription),
		broadcast:   make(chan envelope, 256),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Run 事件循环，ctx 取消后关闭所有连接并退出
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// 先关 done，停止后客户端的注册/退订不再阻塞
			close(h.done)
			for client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[*Client]bool)
			h.rooms = make(map[string]map[*Client]bool)
			h.logger.Info("实时推送中心已停止")
			return

		case client := <-h.register:
			h.clients[client] = true
			h.join(client, BroadcastRoom)
			h.join(client, UserRoom(client.userID))
			h.logger.Debug("客户端接入",
				zap.String("user_id", client.userID),
				zap.Int("online", len(h.clients)),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				for room := range client.rooms {
					h.leave(client, room)
				}
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("客户端断开",
					zap.String("user_id", client.userID),
					zap.Int("online", len(h.clients)),
				)
			}

		case sub := <-h.subscribe:
			if h.clients[sub.client] {
				h.join(sub.client, sub.room)
			}

		case sub := <-h.unsubscribe:
			if h.clients[sub.client] {
				h.leave(sub.client, sub.room)
			}

		case msg := <-h.broadcast:
			for client := range h.rooms[msg.room] {
				select {
				case client.send <- msg.data:
				default:
					// 发送缓冲已满，视为掉线
					for room := range client.rooms {
						h.leave(client, room)
					}
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Publish 向房间发布事件，序列化失败或缓冲满时丢弃并记录日志
func (h *Hub) Publish(room string, eventType string, data any) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.logger.Error("事件序列化失败", zap.String("type", eventType), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- envelope{room: room, data: payload}:
	default:
		h.logger.Warn("推送队列已满，事件被丢弃", zap.String("room", room), zap.String("type", eventType))
	}
}

// addClient 注册客户端；Hub 已停止时直接关闭其发送通道
func (h *Hub) addClient(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// removeClient 注销客户端；Hub 已停止时为空操作
func (h *Hub) removeClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) join(client *Client, room string) {
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][client] = true
	client.rooms[room] = true
}

func (h *Hub) leave(client *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(client.rooms, room)
}
