package dto

// ── 用户模块 DTO ──

// BrowseUsersRequest 公开用户浏览查询参数
type BrowseUsersRequest struct {
	PaginationRequest
	Keyword      string `form:"keyword"      binding:"omitempty,max=50"`
	Availability string `form:"availability" binding:"omitempty,max=50"`
}

// UpdateProfileRequest 更新个人资料请求
// 指针字段区分 "未提交" 与 "清空"
type UpdateProfileRequest struct {
	Name          *string   `json:"name"           binding:"omitempty,min=2,max=50"`
	Location      *string   `json:"location"       binding:"omitempty,max=200"`
	SkillsOffered *[]string `json:"skills_offered" binding:"omitempty,max=30,dive,min=1,max=100"`
	SkillsWanted  *[]string `json:"skills_wanted"  binding:"omitempty,max=30,dive,min=1,max=100"`
	Availability  *[]string `json:"availability"   binding:"omitempty,max=10,dive,min=1,max=50"`
	IsPublic      *bool     `json:"is_public"`
}

// UploadAvatarResponse 头像上传响应
type UploadAvatarResponse struct {
	PhotoURL string `json:"photo_url"`
}
