package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// SwapListFilters 请求列表过滤条件
type SwapListFilters struct {
	Direction string // incoming | outgoing | 空=全部
	Status    string // pending | accepted | rejected | 空=全部
}

// SwapRequestRepository 交换请求数据访问接口
type SwapRequestRepository interface {
	// CreateWithChat 在同一事务中创建请求与配对的聊天会话
	CreateWithChat(ctx context.Context, req *model.SwapRequest, chat *model.Chat) error
	GetByID(ctx context.Context, id string) (*model.SwapRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string, deletedBy string) error
	ListForUser(ctx context.Context, uid string, filters *SwapListFilters, offset, limit int) ([]model.SwapRequest, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]model.SwapRequest, int64, error)
	ListAccepted(ctx context.Context) ([]model.SwapRequest, error)
	// CountAcceptedSkill 统计用户以该技能参与的已接受请求数
	// 发起方按 from_skill 计，接收方按 to_skill 计，两者相加
	CountAcceptedSkill(ctx context.Context, uid, skill string) (int64, error)
}

// swapRequestRepo SwapRequestRepository 的 GORM 实现
type swapRequestRepo struct {
	db *gorm.DB
}

// NewSwapRequestRepo 创建 SwapRequestRepository 实例
func NewSwapRequestRepo(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepo{db: db}
}

func (r *swapRequestRepo) CreateWithChat(ctx context.Context, req *model.SwapRequest, chat *model.Chat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		chat.ChatID = req.SwapRequestID
		return tx.Create(chat).Error
	})
}

func (r *swapRequestRepo) GetByID(ctx context.Context, id string) (*model.SwapRequest, error) {
	var req model.SwapRequest
	err := r.db.WithContext(ctx).
		Where("swap_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *swapRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.SwapRequest{}).
		Where("swap_request_id = ?", id).
		Update("status", status).Error
}

func (r *swapRequestRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SwapRequest{}).
			Where("swap_request_id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Where("swap_request_id = ?", id).
			Delete(&model.SwapRequest{}).Error
	})
}

func (r *swapRequestRepo) ListForUser(ctx context.Context, uid string, filters *SwapListFilters, offset, limit int) ([]model.SwapRequest, int64, error) {
	var reqs []model.SwapRequest
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SwapRequest{})

	direction := ""
	if filters != nil {
		direction = filters.Direction
	}
	switch direction {
	case "incoming":
		db = db.Where("to_uid = ?", uid)
	case "outgoing":
		db = db.Where("from_uid = ?", uid)
	default:
		db = db.Where("from_uid = ? OR to_uid = ?", uid, uid)
	}

	if filters != nil && filters.Status != "" {
		db = db.Where("status = ?", filters.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *swapRequestRepo) ListAll(ctx context.Context, offset, limit int) ([]model.SwapRequest, int64, error) {
	var reqs []model.SwapRequest
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SwapRequest{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *swapRequestRepo) ListAccepted(ctx context.Context) ([]model.SwapRequest, error) {
	var reqs []model.SwapRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StatusAccepted).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *swapRequestRepo) CountAcceptedSkill(ctx context.Context, uid, skill string) (int64, error) {
	var asFrom, asTo int64

	if err := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("status = ?", model.StatusAccepted).
		Where("from_uid = ? AND from_skill = ?", uid, skill).
		Count(&asFrom).Error; err != nil {
		return 0, err
	}

	if err := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("status = ?", model.StatusAccepted).
		Where("to_uid = ? AND to_skill = ?", uid, skill).
		Count(&asTo).Error; err != nil {
		return 0, err
	}

	return asFrom + asTo, nil
}
