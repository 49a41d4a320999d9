package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// FeedbackRepository 评价数据访问接口
type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
	ListForUser(ctx context.Context, toUID string) ([]model.Feedback, error)
	// ExistsByReviewerAndRequest 同一评价人对同一请求是否已有评价
	ExistsByReviewerAndRequest(ctx context.Context, fromUID, requestID string) (bool, error)
}

// feedbackRepo FeedbackRepository 的 GORM 实现
type feedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo 创建 FeedbackRepository 实例
func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}

func (r *feedbackRepo) ListForUser(ctx context.Context, toUID string) ([]model.Feedback, error) {
	var fbs []model.Feedback
	err := r.db.WithContext(ctx).
		Where("to_uid = ?", toUID).
		Order("created_at DESC").
		Find(&fbs).Error
	if err != nil {
		return nil, err
	}
	return fbs, nil
}

func (r *feedbackRepo) ExistsByReviewerAndRequest(ctx context.Context, fromUID, requestID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Where("from_uid = ? AND request_id = ?", fromUID, requestID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
