package model

import "time"

// SwapStatusAudit 管理员改写请求状态的审计记录 — 对应 swap_status_audits
// 管理员可将请求改为任意状态（含 accepted → pending 回退），每次改写留痕
type SwapStatusAudit struct {
	AuditID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_id"`
	RequestID string    `gorm:"type:uuid;not null;index"                       json:"request_id"`
	AdminUID  string    `gorm:"column:admin_uid;type:uuid;not null"            json:"admin_uid"`
	OldStatus string    `gorm:"type:varchar(20);not null"                      json:"old_status"`
	NewStatus string    `gorm:"type:varchar(20);not null"                      json:"new_status"`
	Reason    string    `gorm:"type:varchar(500)"                              json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (SwapStatusAudit) TableName() string { return "swap_status_audits" }
