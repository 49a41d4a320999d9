package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// ChatRepository 聊天数据访问接口
type ChatRepository interface {
	GetByID(ctx context.Context, chatID string) (*model.Chat, error)
	AppendMessage(ctx context.Context, msg *model.ChatMessage) error
	// ListMessages 按时间升序返回会话全部消息
	ListMessages(ctx context.Context, chatID string) ([]model.ChatMessage, error)
}

// chatRepo ChatRepository 的 GORM 实现
type chatRepo struct {
	db *gorm.DB
}

// NewChatRepo 创建 ChatRepository 实例
func NewChatRepo(db *gorm.DB) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) GetByID(ctx context.Context, chatID string) (*model.Chat, error) {
	var chat model.Chat
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepo) AppendMessage(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepo) ListMessages(ctx context.Context, chatID string) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
