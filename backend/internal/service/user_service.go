package service

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/upload"
)

// UserService 用户资料服务接口
type UserService interface {
	GetMe(ctx context.Context, uid string) (*dto.UserDetailResponse, error)
	// GetProfile 查看他人资料，私密或被封禁用户仅本人和管理员可见
	GetProfile(ctx context.Context, viewerUID, viewerRole, targetUID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, uid string, req *dto.UpdateProfileRequest) (*dto.UserDetailResponse, error)
	UploadAvatar(ctx context.Context, uid string, file io.Reader) (string, error)
	Browse(ctx context.Context, req *dto.BrowseUsersRequest) ([]dto.UserResponse, int64, error)
	SaveProfile(ctx context.Context, ownerUID, targetUID string) error
	UnsaveProfile(ctx context.Context, ownerUID, targetUID string) error
	ListSaved(ctx context.Context, ownerUID string) ([]dto.UserResponse, error)
}

// userService UserService 实现
type userService struct {
	users    repository.UserRepository
	saved    repository.SavedProfileRepository
	verify   VerifyService
	uploader upload.Uploader
	logger   *zap.Logger
}

// NewUserService 创建用户服务
// uploader 为 nil 时头像上传返回 ErrUploadUnavailable
func NewUserService(users repository.UserRepository, saved repository.SavedProfileRepository, verify VerifyService, uploader upload.Uploader, logger *zap.Logger) UserService {
	return &userService{
		users:    users,
		saved:    saved,
		verify:   verify,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *userService) GetMe(ctx context.Context, uid string) (*dto.UserDetailResponse, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserDetailResponse(user)
	return &resp, nil
}

func (s *userService) GetProfile(ctx context.Context, viewerUID, viewerRole, targetUID string) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, targetUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 可见性在服务端判定，不依赖前端过滤
	if !user.IsPublic || user.IsBanned {
		if viewerUID != targetUID && viewerRole != model.RoleAdmin {
			return nil, ErrProfileHidden
		}
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, uid string, req *dto.UpdateProfileRequest) (*dto.UserDetailResponse, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	skillsChanged := false
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.SkillsOffered != nil {
		user.SkillsOffered = model.StringArray(*req.SkillsOffered)
		skillsChanged = true
	}
	if req.SkillsWanted != nil {
		user.SkillsWanted = model.StringArray(*req.SkillsWanted)
	}
	if req.Availability != nil {
		user.Availability = model.StringArray(*req.Availability)
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	// 提供技能变化会影响认证结果，立即重算
	if skillsChanged {
		if err := s.verify.Recompute(ctx, uid); err != nil {
			s.logger.Warn("认证技能重算失败", zap.String("user_id", uid), zap.Error(err))
		}
		user, err = s.users.GetByID(ctx, uid)
		if err != nil {
			return nil, err
		}
	}

	resp := toUserDetailResponse(user)
	return &resp, nil
}

func (s *userService) UploadAvatar(ctx context.Context, uid string, file io.Reader) (string, error) {
	if s.uploader == nil {
		return "", ErrUploadUnavailable
	}

	url, err := s.uploader.UploadAvatar(ctx, uid, file)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return "", err
	}
	user.PhotoURL = &url
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	return url, nil
}

func (s *userService) Browse(ctx context.Context, req *dto.BrowseUsersRequest) ([]dto.UserResponse, int64, error) {
	filters := &repository.BrowseFilters{
		Keyword:      req.Keyword,
		Availability: req.Availability,
	}

	users, total, err := s.users.BrowsePublic(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, toUserResponse(&users[i]))
	}
	return list, total, nil
}

func (s *userService) SaveProfile(ctx context.Context, ownerUID, targetUID string) error {
	if ownerUID == targetUID {
		return ErrSaveSelf
	}

	target, err := s.users.GetByID(ctx, targetUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !target.IsPublic || target.IsBanned {
		return ErrProfileHidden
	}

	// 重复收藏静默成功
	return s.saved.Save(ctx, ownerUID, targetUID)
}

func (s *userService) UnsaveProfile(ctx context.Context, ownerUID, targetUID string) error {
	return s.saved.Remove(ctx, ownerUID, targetUID)
}

func (s *userService) ListSaved(ctx context.Context, ownerUID string) ([]dto.UserResponse, error) {
	ids, err := s.saved.ListTargetIDs(ctx, ownerUID)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 收藏后转为私密或被封禁的用户从列表中过滤
	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		if !users[i].IsPublic || users[i].IsBanned {
			continue
		}
		list = append(list, toUserResponse(&users[i]))
	}
	return list, nil
}
