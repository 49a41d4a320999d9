package model

import "time"

// Feedback 交换评价表 — 对应 feedbacks
// 用户不可修改或删除已提交的评价
type Feedback struct {
	FeedbackID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"feedback_id"`
	FromUID    string    `gorm:"column:from_uid;type:uuid;not null"             json:"from_uid"`
	ToUID      string    `gorm:"column:to_uid;type:uuid;not null"               json:"to_uid"`
	RequestID  string    `gorm:"type:uuid;not null"                             json:"request_id"`
	Rating     int       `gorm:"not null"                                       json:"rating"` // 1..5
	Comment    string    `gorm:"type:varchar(1000)"                             json:"comment,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Feedback) TableName() string { return "feedbacks" }
