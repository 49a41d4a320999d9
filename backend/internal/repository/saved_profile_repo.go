package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// SavedProfileRepository 收藏资料数据访问接口
type SavedProfileRepository interface {
	// Save 幂等写入收藏关系，重复收藏不报错也不产生新行
	Save(ctx context.Context, ownerUID, targetUID string) error
	Remove(ctx context.Context, ownerUID, targetUID string) error
	ListTargetIDs(ctx context.Context, ownerUID string) ([]string, error)
}

// savedProfileRepo SavedProfileRepository 的 GORM 实现
type savedProfileRepo struct {
	db *gorm.DB
}

// NewSavedProfileRepo 创建 SavedProfileRepository 实例
func NewSavedProfileRepo(db *gorm.DB) SavedProfileRepository {
	return &savedProfileRepo{db: db}
}

func (r *savedProfileRepo) Save(ctx context.Context, ownerUID, targetUID string) error {
	rel := model.SavedProfile{OwnerUID: ownerUID, TargetUID: targetUID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rel).Error
}

func (r *savedProfileRepo) Remove(ctx context.Context, ownerUID, targetUID string) error {
	return r.db.WithContext(ctx).
		Where("owner_uid = ? AND target_uid = ?", ownerUID, targetUID).
		Delete(&model.SavedProfile{}).Error
}

func (r *savedProfileRepo) ListTargetIDs(ctx context.Context, ownerUID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.SavedProfile{}).
		Where("owner_uid = ?", ownerUID).
		Order("created_at DESC").
		Pluck("target_uid", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
