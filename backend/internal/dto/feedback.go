package dto

// ── 评价模块 DTO ──

// CreateFeedbackRequest 提交评价请求
type CreateFeedbackRequest struct {
	ToUID     string `json:"to_uid"     binding:"required,uuid"`
	RequestID string `json:"request_id" binding:"required,uuid"`
	Rating    int    `json:"rating"     binding:"required,min=1,max=5"`
	Comment   string `json:"comment"    binding:"omitempty,max=1000"`
}

// FeedbackResponse 评价响应
type FeedbackResponse struct {
	ID        string `json:"id"`
	FromUID   string `json:"from_uid"`
	ToUID     string `json:"to_uid"`
	RequestID string `json:"request_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

// UserFeedbackResponse 用户评价汇总响应
type UserFeedbackResponse struct {
	AverageRating float64            `json:"average_rating"`
	Count         int                `json:"count"`
	Items         []FeedbackResponse `json:"items"`
}
