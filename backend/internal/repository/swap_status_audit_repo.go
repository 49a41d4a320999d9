package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// SwapStatusAuditRepository 状态改写审计数据访问接口
type SwapStatusAuditRepository interface {
	Create(ctx context.Context, audit *model.SwapStatusAudit) error
	ListByRequest(ctx context.Context, requestID string) ([]model.SwapStatusAudit, error)
}

// swapStatusAuditRepo SwapStatusAuditRepository 的 GORM 实现
type swapStatusAuditRepo struct {
	db *gorm.DB
}

// NewSwapStatusAuditRepo 创建 SwapStatusAuditRepository 实例
func NewSwapStatusAuditRepo(db *gorm.DB) SwapStatusAuditRepository {
	return &swapStatusAuditRepo{db: db}
}

func (r *swapStatusAuditRepo) Create(ctx context.Context, audit *model.SwapStatusAudit) error {
	return r.db.WithContext(ctx).Create(audit).Error
}

func (r *swapStatusAuditRepo) ListByRequest(ctx context.Context, requestID string) ([]model.SwapStatusAudit, error) {
	var audits []model.SwapStatusAudit
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&audits).Error
	if err != nil {
		return nil, err
	}
	return audits, nil
}
