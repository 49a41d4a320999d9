package service

import (
	"time"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

// ── model → dto 组装 ──

func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:             u.UserID,
		Name:           u.Name,
		SkillsOffered:  u.SkillsOffered,
		SkillsWanted:   u.SkillsWanted,
		VerifiedSkills: u.VerifiedSkills,
		Availability:   u.Availability,
		Rating:         u.Rating,
		ReviewCount:    u.ReviewCount,
	}
	if u.Location != nil {
		resp.Location = *u.Location
	}
	if u.PhotoURL != nil {
		resp.PhotoURL = *u.PhotoURL
	}
	if resp.SkillsOffered == nil {
		resp.SkillsOffered = []string{}
	}
	if resp.SkillsWanted == nil {
		resp.SkillsWanted = []string{}
	}
	if resp.VerifiedSkills == nil {
		resp.VerifiedSkills = []string{}
	}
	if resp.Availability == nil {
		resp.Availability = []string{}
	}
	return resp
}

func toUserDetailResponse(u *model.User) dto.UserDetailResponse {
	return dto.UserDetailResponse{
		UserResponse: toUserResponse(u),
		Email:        u.Email,
		Role:         u.Role,
		IsPublic:     u.IsPublic,
		IsBanned:     u.IsBanned,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

func toSwapResponse(r *model.SwapRequest) dto.SwapResponse {
	resp := dto.SwapResponse{
		ID:        r.SwapRequestID,
		FromUID:   r.FromUID,
		ToUID:     r.ToUID,
		FromUser:  dto.SwapUserSnapshot{Name: r.FromName},
		ToUser:    dto.SwapUserSnapshot{Name: r.ToName},
		FromSkill: r.FromSkill,
		ToSkill:   r.ToSkill,
		Message:   r.Message,
		Status:    r.Status,
		ChatID:    r.SwapRequestID, // 聊天会话与请求共用主键
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
	if r.FromPhotoURL != nil {
		resp.FromUser.PhotoURL = *r.FromPhotoURL
	}
	if r.ToPhotoURL != nil {
		resp.ToUser.PhotoURL = *r.ToPhotoURL
	}
	return resp
}

func toChatMessageResponse(m *model.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:        m.MessageID,
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.CreatedAt.Format(time.RFC3339),
	}
}

func toFeedbackResponse(f *model.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:        f.FeedbackID,
		FromUID:   f.FromUID,
		ToUID:     f.ToUID,
		RequestID: f.RequestID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func toAnnouncementResponse(a *model.Announcement) dto.AnnouncementResponse {
	return dto.AnnouncementResponse{
		ID:        a.AnnouncementID,
		Title:     a.Title,
		Message:   a.Message,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func toAuditResponse(a *model.SwapStatusAudit) dto.AuditResponse {
	return dto.AuditResponse{
		ID:        a.AuditID,
		RequestID: a.RequestID,
		AdminUID:  a.AdminUID,
		OldStatus: a.OldStatus,
		NewStatus: a.NewStatus,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
