package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// BrowseFilters 公开用户浏览过滤条件
type BrowseFilters struct {
	Keyword      string // 匹配姓名或技能（不区分大小写，子串匹配）
	Availability string // 精确匹配空闲时段集合成员
}

// AdminUserFilters 管理端用户列表过滤条件
type AdminUserFilters struct {
	Keyword string
	Banned  *bool
}

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateVerifiedSkills(ctx context.Context, id string, skills model.StringArray) error
	RecalcRatingStats(ctx context.Context, id string) error
	BrowsePublic(ctx context.Context, filters *BrowseFilters, offset, limit int) ([]model.User, int64, error)
	ListAll(ctx context.Context, filters *AdminUserFilters, offset, limit int) ([]model.User, int64, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.User, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) UpdateVerifiedSkills(ctx context.Context, id string, skills model.StringArray) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", id).
		Update("verified_skills", skills).Error
}

// RecalcRatingStats 依据 feedbacks 表重算用户的均分与评价数
// 单条 UPDATE 语句，可在任意时刻幂等重放
func (r *userRepo) RecalcRatingStats(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE users SET
			rating = COALESCE((SELECT AVG(rating) FROM feedbacks WHERE to_uid = users.user_id), 0),
			review_count = (SELECT COUNT(*) FROM feedbacks WHERE to_uid = users.user_id)
		WHERE user_id = ?`, id).Error
}

func (r *userRepo) BrowsePublic(ctx context.Context, filters *BrowseFilters, offset, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	db := r.db.WithContext(ctx).Model(&model.User{}).
		Where("is_public = ?", true).
		Where("is_banned = ?", false)

	if filters != nil {
		if filters.Keyword != "" {
			kw := "%" + filters.Keyword + "%"
			db = db.Where(`(name ILIKE ?
				OR EXISTS (SELECT 1 FROM unnest(skills_offered) AS s WHERE s ILIKE ?)
				OR EXISTS (SELECT 1 FROM unnest(skills_wanted) AS s WHERE s ILIKE ?))`, kw, kw, kw)
		}
		if filters.Availability != "" {
			db = db.Where("? = ANY(availability)", filters.Availability)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepo) ListAll(ctx context.Context, filters *AdminUserFilters, offset, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	db := r.db.WithContext(ctx).Model(&model.User{})

	if filters != nil {
		if filters.Keyword != "" {
			kw := "%" + filters.Keyword + "%"
			db = db.Where("(name ILIKE ? OR email ILIKE ?)", kw, kw)
		}
		if filters.Banned != nil {
			db = db.Where("is_banned = ?", *filters.Banned)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepo) ListByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
