package dto

// ── 聊天模块 DTO ──

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

// ChatMessageResponse 聊天消息响应
type ChatMessageResponse struct {
	ID        string `json:"id"`
	ChatID    string `json:"chat_id"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}
