package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
)

// FeedbackService 评价服务接口
// 评价只增不改不删，请求被删除后评价保留
type FeedbackService interface {
	Create(ctx context.Context, fromUID string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	ListForUser(ctx context.Context, targetUID string) (*dto.UserFeedbackResponse, error)
}

// feedbackService FeedbackService 实现
type feedbackService struct {
	feedbacks     repository.FeedbackRepository
	swaps         repository.SwapRequestRepository
	users         repository.UserRepository
	singlePerSwap bool
	logger        *zap.Logger
}

// NewFeedbackService 创建评价服务
func NewFeedbackService(feedbacks repository.FeedbackRepository, swaps repository.SwapRequestRepository, users repository.UserRepository, cfg *config.FeatureConfig, logger *zap.Logger) FeedbackService {
	return &feedbackService{
		feedbacks:     feedbacks,
		swaps:         swaps,
		users:         users,
		singlePerSwap: cfg.SingleFeedbackPerRequest,
		logger:        logger,
	}
}

func (s *feedbackService) Create(ctx context.Context, fromUID string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	swap, err := s.swaps.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if !swap.Involves(fromUID) {
		return nil, ErrForbidden
	}
	if swap.Status != model.StatusAccepted {
		return nil, ErrFeedbackNotAllowed
	}

	// 评价对象必须是交换的另一方
	other := swap.FromUID
	if fromUID == swap.FromUID {
		other = swap.ToUID
	}
	if req.ToUID != other {
		return nil, ErrFeedbackTarget
	}

	if s.singlePerSwap {
		exists, err := s.feedbacks.ExistsByReviewerAndRequest(ctx, fromUID, req.RequestID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrFeedbackExists
		}
	}

	fb := &model.Feedback{
		FromUID:   fromUID,
		ToUID:     req.ToUID,
		RequestID: req.RequestID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.feedbacks.Create(ctx, fb); err != nil {
		return nil, err
	}

	// 评价与统计非同事务，重算语句幂等，失败可重放补偿
	if err := s.users.RecalcRatingStats(ctx, req.ToUID); err != nil {
		s.logger.Warn("评分统计重算失败",
			zap.String("user_id", req.ToUID),
			zap.Error(err),
		)
	}

	resp := toFeedbackResponse(fb)
	return &resp, nil
}

func (s *feedbackService) ListForUser(ctx context.Context, targetUID string) (*dto.UserFeedbackResponse, error) {
	if _, err := s.users.GetByID(ctx, targetUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fbs, err := s.feedbacks.ListForUser(ctx, targetUID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedbackResponse, 0, len(fbs))
	var sum int
	for i := range fbs {
		items = append(items, toFeedbackResponse(&fbs[i]))
		sum += fbs[i].Rating
	}

	resp := &dto.UserFeedbackResponse{
		Count: len(items),
		Items: items,
	}
	if len(items) > 0 {
		resp.AverageRating = float64(sum) / float64(len(items))
	}
	return resp, nil
}
