package dto

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// ── 用户模块响应 ──

// UserResponse 用户公开信息响应（脱敏，浏览/详情页共用）
type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location,omitempty"`
	PhotoURL       string   `json:"photo_url,omitempty"`
	SkillsOffered  []string `json:"skills_offered"`
	SkillsWanted   []string `json:"skills_wanted"`
	VerifiedSkills []string `json:"verified_skills"`
	Availability   []string `json:"availability"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
}

// UserDetailResponse 当前用户完整信息（GET /users/me）
type UserDetailResponse struct {
	UserResponse
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsPublic  bool   `json:"is_public"`
	IsBanned  bool   `json:"is_banned"`
	CreatedAt string `json:"created_at"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}
