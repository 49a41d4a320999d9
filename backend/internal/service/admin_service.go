package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/realtime"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
)

// AdminService 管理服务接口
type AdminService interface {
	ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.UserDetailResponse, int64, error)
	// SetBanned 封禁或解封用户，封禁后用户从浏览与排行榜中消失
	SetBanned(ctx context.Context, uid string, banned bool) error
	// RemoveSkill 内容审核：从用户技能列表中移除违规条目
	RemoveSkill(ctx context.Context, uid string, req *dto.RemoveSkillRequest) error
	CreateAnnouncement(ctx context.Context, adminUID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	ListAnnouncements(ctx context.Context) ([]dto.AnnouncementResponse, error)
	// ExportUsers 导出全量用户数据为 xlsx
	ExportUsers(ctx context.Context) ([]byte, error)
}

// adminService AdminService 实现
type adminService struct {
	users         repository.UserRepository
	announcements repository.AnnouncementRepository
	verify        VerifyService
	publisher     realtime.Publisher
	logger        *zap.Logger
}

// NewAdminService 创建管理服务
func NewAdminService(users repository.UserRepository, announcements repository.AnnouncementRepository, verify VerifyService, publisher realtime.Publisher, logger *zap.Logger) AdminService {
	return &adminService{
		users:         users,
		announcements: announcements,
		verify:        verify,
		publisher:     publisher,
		logger:        logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.UserDetailResponse, int64, error) {
	filters := &repository.AdminUserFilters{
		Keyword: req.Keyword,
		Banned:  req.Banned,
	}

	users, total, err := s.users.ListAll(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.UserDetailResponse, 0, len(users))
	for i := range users {
		list = append(list, toUserDetailResponse(&users[i]))
	}
	return list, total, nil
}

func (s *adminService) SetBanned(ctx context.Context, uid string, banned bool) error {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.IsBanned == banned {
		return nil // 幂等
	}

	user.IsBanned = banned
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("用户封禁状态变更",
		zap.String("user_id", uid),
		zap.Bool("banned", banned),
	)
	return nil
}

func (s *adminService) RemoveSkill(ctx context.Context, uid string, req *dto.RemoveSkillRequest) error {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	removeFrom := func(skills model.StringArray) model.StringArray {
		out := model.StringArray{}
		for _, sk := range skills {
			if !strings.EqualFold(sk, req.Skill) {
				out = append(out, sk)
			}
		}
		return out
	}

	switch req.Field {
	case "offered":
		user.SkillsOffered = removeFrom(user.SkillsOffered)
	case "wanted":
		user.SkillsWanted = removeFrom(user.SkillsWanted)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	// 提供技能被移除时认证随之失效
	if req.Field == "offered" {
		if err := s.verify.Recompute(ctx, uid); err != nil {
			s.logger.Warn("认证技能重算失败", zap.String("user_id", uid), zap.Error(err))
		}
	}

	s.logger.Info("管理员移除用户技能",
		zap.String("user_id", uid),
		zap.String("field", req.Field),
		zap.String("skill", req.Skill),
	)
	return nil
}

func (s *adminService) CreateAnnouncement(ctx context.Context, adminUID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a := &model.Announcement{
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: adminUID,
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}

	resp := toAnnouncementResponse(a)
	s.publisher.Publish(realtime.BroadcastRoom, realtime.EventAnnouncement, resp)
	return &resp, nil
}

func (s *adminService) ListAnnouncements(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	items, err := s.announcements.List(ctx, 50)
	if err != nil {
		return nil, err
	}

	list := make([]dto.AnnouncementResponse, 0, len(items))
	for i := range items {
		list = append(list, toAnnouncementResponse(&items[i]))
	}
	return list, nil
}

func (s *adminService) ExportUsers(ctx context.Context) ([]byte, error) {
	const pageSize = 500

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "姓名", "邮箱", "角色", "地区", "提供技能", "需求技能", "认证技能", "公开", "封禁", "均分", "评价数", "注册时间"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for page := 0; ; page++ {
		users, _, err := s.users.ListAll(ctx, nil, page*pageSize, pageSize)
		if err != nil {
			return nil, err
		}
		if len(users) == 0 {
			break
		}

		for i := range users {
			u := &users[i]
			location := ""
			if u.Location != nil {
				location = *u.Location
			}
			values := []any{
				u.UserID,
				u.Name,
				u.Email,
				u.Role,
				location,
				strings.Join(u.SkillsOffered, ", "),
				strings.Join(u.SkillsWanted, ", "),
				strings.Join(u.VerifiedSkills, ", "),
				u.IsPublic,
				u.IsBanned,
				u.Rating,
				u.ReviewCount,
				u.CreatedAt.Format(time.RFC3339),
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}

		if len(users) < pageSize {
			break
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("导出用户数据失败: %w", err)
	}

	s.logger.Info("用户数据已导出", zap.Int("count", row-2))
	return buf.Bytes(), nil
}
