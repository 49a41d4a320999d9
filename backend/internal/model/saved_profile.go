package model

import "time"

// SavedProfile 收藏资料关系表 — 对应 saved_profiles
// (owner, target) 复合主键保证收藏操作幂等
type SavedProfile struct {
	OwnerUID  string    `gorm:"column:owner_uid;type:uuid;primaryKey"  json:"owner_uid"`
	TargetUID string    `gorm:"column:target_uid;type:uuid;primaryKey" json:"target_uid"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"     json:"created_at"`
}

// TableName 指定表名
func (SavedProfile) TableName() string { return "saved_profiles" }
