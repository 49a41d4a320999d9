package model

// 交换请求状态
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidStatus 判断是否为合法状态值
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// SwapRequest 技能交换请求表 — 对应 swap_requests
// FromName/ToName/照片为创建时的快照，不随后续资料修改同步
type SwapRequest struct {
	SwapRequestID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"swap_request_id"`
	FromUID       string  `gorm:"column:from_uid;type:uuid;not null"             json:"from_uid"`
	ToUID         string  `gorm:"column:to_uid;type:uuid;not null"               json:"to_uid"`
	FromName      string  `gorm:"type:varchar(100);not null"                     json:"from_name"`
	FromPhotoURL  *string `gorm:"type:text"                                      json:"from_photo_url,omitempty"`
	ToName        string  `gorm:"type:varchar(100);not null"                     json:"to_name"`
	ToPhotoURL    *string `gorm:"type:text"                                      json:"to_photo_url,omitempty"`
	FromSkill     string  `gorm:"type:varchar(100);not null"                     json:"from_skill"`
	ToSkill       string  `gorm:"type:varchar(100);not null"                     json:"to_skill"`
	Message       string  `gorm:"type:varchar(500)"                              json:"message,omitempty"`
	Status        string  `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"` // pending | accepted | rejected
	SoftDeleteModel
}

// TableName 指定表名
func (SwapRequest) TableName() string { return "swap_requests" }

// Involves 判断用户是否为请求的一方
func (r *SwapRequest) Involves(uid string) bool {
	return r.FromUID == uid || r.ToUID == uid
}
