package dto

// ── 管理模块 DTO ──

// AdminUserListRequest 管理端用户列表查询参数（含私密/封禁用户）
type AdminUserListRequest struct {
	PaginationRequest
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
	Banned  *bool  `form:"banned"`
}

// BanUserRequest 封禁/解封请求
type BanUserRequest struct {
	Banned bool `json:"banned"`
}

// RemoveSkillRequest 移除用户技能请求（内容审核）
type RemoveSkillRequest struct {
	Field string `json:"field" binding:"required,oneof=offered wanted"`
	Skill string `json:"skill" binding:"required,min=1,max=100"`
}

// OverrideStatusRequest 管理员改写请求状态
type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// CreateAnnouncementRequest 发布公告请求
type CreateAnnouncementRequest struct {
	Title   string `json:"title"   binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=1"`
}

// AnnouncementResponse 公告响应
type AnnouncementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// AuditResponse 状态改写审计响应
type AuditResponse struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id"`
	AdminUID  string `json:"admin_uid"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}
