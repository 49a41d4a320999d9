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

// SwapService 交换请求服务接口
type SwapService interface {
	Create(ctx context.Context, fromUID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error)
	Get(ctx context.Context, uid, role, requestID string) (*dto.SwapResponse, error)
	List(ctx context.Context, uid string, req *dto.SwapListRequest) ([]dto.SwapResponse, int64, error)
	// Respond 接收方响应请求；重复提交相同决定幂等成功，已处理的请求不可改判
	Respond(ctx context.Context, uid, requestID, decision string) (*dto.SwapResponse, error)
	// Delete 软删除，双方或管理员可操作，已有评价不受影响
	Delete(ctx context.Context, uid, role, requestID string) error
	// OverrideStatus 管理员改写任意请求状态，每次改写写入审计记录
	OverrideStatus(ctx context.Context, adminUID, requestID string, req *dto.OverrideStatusRequest) (*dto.SwapResponse, error)
	ListAudits(ctx context.Context, requestID string) ([]dto.AuditResponse, error)
	// ListAllForAdmin 管理端全量请求列表
	ListAllForAdmin(ctx context.Context, req *dto.PaginationRequest) ([]dto.SwapResponse, int64, error)
}

// swapService SwapService 实现
type swapService struct {
	swaps     repository.SwapRequestRepository
	users     repository.UserRepository
	audits    repository.SwapStatusAuditRepository
	verify    VerifyService
	publisher realtime.Publisher
	logger    *zap.Logger
}

// NewSwapService 创建交换请求服务
func NewSwapService(swaps repository.SwapRequestRepository, users repository.UserRepository, audits repository.SwapStatusAuditRepository, verify VerifyService, publisher realtime.Publisher, logger *zap.Logger) SwapService {
	return &swapService{
		swaps:     swaps,
		users:     users,
		audits:    audits,
		verify:    verify,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *swapService) Create(ctx context.Context, fromUID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error) {
	if fromUID == req.ToUID {
		return nil, ErrSelfRequest
	}

	from, err := s.users.GetByID(ctx, fromUID)
	if err != nil {
		return nil, err
	}

	to, err := s.users.GetByID(ctx, req.ToUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !to.IsPublic || to.IsBanned {
		return nil, ErrProfileHidden
	}

	// 技能匹配校验：我方提供的技能须是对方想学的，反之亦然
	if !from.SkillsOffered.Contains(req.FromSkill) || !to.SkillsWanted.Contains(req.FromSkill) {
		return nil, ErrSkillMismatch
	}
	if !to.SkillsOffered.Contains(req.ToSkill) || !from.SkillsWanted.Contains(req.ToSkill) {
		return nil, ErrSkillMismatch
	}

	// 姓名与头像为创建时快照
	swap := &model.SwapRequest{
		FromUID:      fromUID,
		ToUID:        req.ToUID,
		FromName:     from.Name,
		FromPhotoURL: from.PhotoURL,
		ToName:       to.Name,
		ToPhotoURL:   to.PhotoURL,
		FromSkill:    req.FromSkill,
		ToSkill:      req.ToSkill,
		Message:      req.Message,
		Status:       model.StatusPending,
	}
	chat := &model.Chat{UserA: fromUID, UserB: req.ToUID}

	// 请求与聊天会话同事务落库
	if err := s.swaps.CreateWithChat(ctx, swap, chat); err != nil {
		return nil, err
	}

	s.logger.Info("交换请求已创建",
		zap.String("request_id", swap.SwapRequestID),
		zap.String("from", fromUID),
		zap.String("to", req.ToUID),
	)

	resp := toSwapResponse(swap)
	s.publisher.Publish(realtime.UserRoom(req.ToUID), realtime.EventRequestStatus, resp)
	return &resp, nil
}

func (s *swapService) Get(ctx context.Context, uid, role, requestID string) (*dto.SwapResponse, error) {
	swap, err := s.swaps.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if !swap.Involves(uid) && role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	resp := toSwapResponse(swap)
	return &resp, nil
}

func (s *swapService) List(ctx context.Context, uid string, req *dto.SwapListRequest) ([]dto.SwapResponse, int64, error) {
	filters := &repository.SwapListFilters{
		Direction: req.Direction,
		Status:    req.Status,
	}

	swaps, total, err := s.swaps.ListForUser(ctx, uid, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.SwapResponse, 0, len(swaps))
	for i := range swaps {
		list = append(list, toSwapResponse(&swaps[i]))
	}
	return list, total, nil
}

func (s *swapService) Respond(ctx context.Context, uid, requestID, decision string) (*dto.SwapResponse, error) {
	swap, err := s.swaps.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	// 只有接收方可以响应
	if swap.ToUID != uid {
		return nil, ErrForbidden
	}

	newStatus := model.StatusRejected
	if decision == "accept" {
		newStatus = model.StatusAccepted
	}

	// 重复提交相同决定幂等返回，已处理请求不可改判
	if swap.Status != model.StatusPending {
		if swap.Status == newStatus {
			resp := toSwapResponse(swap)
			return &resp, nil
		}
		return nil, ErrAlreadyResponded
	}

	if err := s.swaps.UpdateStatus(ctx, requestID, newStatus); err != nil {
		return nil, err
	}
	swap.Status = newStatus

	s.logger.Info("交换请求已响应",
		zap.String("request_id", requestID),
		zap.String("status", newStatus),
	)

	// 接受后双方技能认证计数变化，重算认证
	if newStatus == model.StatusAccepted {
		if err := s.verify.Recompute(ctx, swap.FromUID); err != nil {
			s.logger.Warn("认证技能重算失败", zap.String("user_id", swap.FromUID), zap.Error(err))
		}
		if err := s.verify.Recompute(ctx, swap.ToUID); err != nil {
			s.logger.Warn("认证技能重算失败", zap.String("user_id", swap.ToUID), zap.Error(err))
		}
	}

	resp := toSwapResponse(swap)
	s.publisher.Publish(realtime.UserRoom(swap.FromUID), realtime.EventRequestStatus, resp)
	s.publisher.Publish(realtime.UserRoom(swap.ToUID), realtime.EventRequestStatus, resp)
	return &resp, nil
}

func (s *swapService) Delete(ctx context.Context, uid, role, requestID string) error {
	swap, err := s.swaps.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	if !swap.Involves(uid) && role != model.RoleAdmin {
		return ErrForbidden
	}

	return s.swaps.Delete(ctx, requestID, uid)
}

func (s *swapService) OverrideStatus(ctx context.Context, adminUID, requestID string, req *dto.OverrideStatusRequest) (*dto.SwapResponse, error) {
	swap, err := s.swaps.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	oldStatus := swap.Status
	if oldStatus != req.Status {
		if err := s.swaps.UpdateStatus(ctx, requestID, req.Status); err != nil {
			return nil, err
		}
		swap.Status = req.Status

		// 状态改写可能影响认证计数，双方都重算
		if err := s.verify.Recompute(ctx, swap.FromUID); err != nil {
			s.logger.Warn("认证技能重算失败", zap.String("user_id", swap.FromUID), zap.Error(err))
		}
		if err := s.verify.Recompute(ctx, swap.ToUID); err != nil {
			s.logger.Warn("认证技能重算失败", zap.String("user_id", swap.ToUID), zap.Error(err))
		}
	}

	// 即使状态未变也留痕，管理操作必须可追溯
	audit := &model.SwapStatusAudit{
		RequestID: requestID,
		AdminUID:  adminUID,
		OldStatus: oldStatus,
		NewStatus: req.Status,
		Reason:    req.Reason,
	}
	if err := s.audits.Create(ctx, audit); err != nil {
		return nil, err
	}

	s.logger.Info("管理员改写请求状态",
		zap.String("request_id", requestID),
		zap.String("admin_uid", adminUID),
		zap.String("old", oldStatus),
		zap.String("new", req.Status),
	)

	resp := toSwapResponse(swap)
	s.publisher.Publish(realtime.UserRoom(swap.FromUID), realtime.EventRequestStatus, resp)
	s.publisher.Publish(realtime.UserRoom(swap.ToUID), realtime.EventRequestStatus, resp)
	return &resp, nil
}

func (s *swapService) ListAllForAdmin(ctx context.Context, req *dto.PaginationRequest) ([]dto.SwapResponse, int64, error) {
	swaps, total, err := s.swaps.ListAll(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.SwapResponse, 0, len(swaps))
	for i := range swaps {
		list = append(list, toSwapResponse(&swaps[i]))
	}
	return list, total, nil
}

func (s *swapService) ListAudits(ctx context.Context, requestID string) ([]dto.AuditResponse, error) {
	audits, err := s.audits.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	list := make([]dto.AuditResponse, 0, len(audits))
	for i := range audits {
		list = append(list, toAuditResponse(&audits[i]))
	}
	return list, nil
}
