package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/realtime"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
)

// ChatService 聊天服务接口
// 仅会话成员可访问，且对应请求必须处于 accepted 状态
type ChatService interface {
	History(ctx context.Context, uid, chatID string) ([]dto.ChatMessageResponse, error)
	Send(ctx context.Context, uid, chatID string, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	// CanJoin 实现 realtime.RoomAuthorizer，WebSocket 订阅聊天房间时校验权限
	CanJoin(ctx context.Context, userID, room string) bool
}

// chatService ChatService 实现
type chatService struct {
	chats     repository.ChatRepository
	swaps     repository.SwapRequestRepository
	publisher realtime.Publisher
	logger    *zap.Logger
}

// NewChatService 创建聊天服务
func NewChatService(chats repository.ChatRepository, swaps repository.SwapRequestRepository, publisher realtime.Publisher, logger *zap.Logger) ChatService {
	return &chatService{
		chats:     chats,
		swaps:     swaps,
		publisher: publisher,
		logger:    logger,
	}
}

// authorize 校验成员身份与解锁状态，通过后返回会话
func (s *chatService) authorize(ctx context.Context, uid, chatID string) (*model.Chat, error) {
	chat, err := s.chats.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	if !chat.HasMember(uid) {
		return nil, ErrNotChatMember
	}

	// 会话与请求共用主键，请求被软删除后聊天一并不可见
	swap, err := s.swaps.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	if swap.Status != model.StatusAccepted {
		return nil, ErrChatLocked
	}

	return chat, nil
}

func (s *chatService) History(ctx context.Context, uid, chatID string) ([]dto.ChatMessageResponse, error) {
	if _, err := s.authorize(ctx, uid, chatID); err != nil {
		return nil, err
	}

	msgs, err := s.chats.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	list := make([]dto.ChatMessageResponse, 0, len(msgs))
	for i := range msgs {
		list = append(list, toChatMessageResponse(&msgs[i]))
	}
	return list, nil
}

func (s *chatService) Send(ctx context.Context, uid, chatID string, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	if _, err := s.authorize(ctx, uid, chatID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ChatID:   chatID,
		SenderID: uid,
		Text:     req.Text,
	}
	if err := s.chats.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}

	resp := toChatMessageResponse(msg)
	s.publisher.Publish(realtime.ChatRoom(chatID), realtime.EventChatMessage, resp)
	return &resp, nil
}

func (s *chatService) CanJoin(ctx context.Context, userID, room string) bool {
	chatID, ok := realtime.ParseChatRoom(room)
	if !ok {
		return false
	}
	_, err := s.authorize(ctx, userID, chatID)
	return err == nil
}
