package model

import "time"

// Chat 聊天会话表 — 对应 chats
// ChatID 与所属 SwapRequest 的主键一致（1:1）
type Chat struct {
	ChatID    string    `gorm:"type:uuid;primaryKey"               json:"chat_id"`
	UserA     string    `gorm:"column:user_a;type:uuid;not null"   json:"user_a"`
	UserB     string    `gorm:"column:user_b;type:uuid;not null"   json:"user_b"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Chat) TableName() string { return "chats" }

// HasMember 判断用户是否为会话成员
func (c *Chat) HasMember(uid string) bool {
	return c.UserA == uid || c.UserB == uid
}

// ChatMessage 聊天消息表 — 对应 chat_messages，仅追加
type ChatMessage struct {
	MessageID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	ChatID    string    `gorm:"type:uuid;not null;index"                       json:"chat_id"`
	SenderID  string    `gorm:"type:uuid;not null"                             json:"sender_id"`
	Text      string    `gorm:"type:text;not null"                             json:"text"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (ChatMessage) TableName() string { return "chat_messages" }
