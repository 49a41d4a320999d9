package dto

// ── 交换请求模块 DTO ──

// CreateSwapRequest 发起交换请求
type CreateSwapRequest struct {
	ToUID     string `json:"to_uid"     binding:"required,uuid"`
	FromSkill string `json:"from_skill" binding:"required,min=1,max=100"`
	ToSkill   string `json:"to_skill"   binding:"required,min=1,max=100"`
	Message   string `json:"message"    binding:"omitempty,max=500"`
}

// RespondSwapRequest 响应交换请求
type RespondSwapRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject"`
}

// SwapListRequest 请求列表查询参数
type SwapListRequest struct {
	PaginationRequest
	Direction string `form:"direction" binding:"omitempty,oneof=incoming outgoing"`
	Status    string `form:"status"    binding:"omitempty,oneof=pending accepted rejected"`
}

// SwapUserSnapshot 请求内嵌的用户快照（创建时落库，不随资料更新）
type SwapUserSnapshot struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// SwapResponse 交换请求响应
type SwapResponse struct {
	ID        string           `json:"id"`
	FromUID   string           `json:"from_uid"`
	ToUID     string           `json:"to_uid"`
	FromUser  SwapUserSnapshot `json:"from_user"`
	ToUser    SwapUserSnapshot `json:"to_user"`
	FromSkill string           `json:"from_skill"`
	ToSkill   string           `json:"to_skill"`
	Message   string           `json:"message,omitempty"`
	Status    string           `json:"status"`
	ChatID    string           `json:"chat_id"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}
