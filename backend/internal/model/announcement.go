package model

import "time"

// Announcement 系统公告表 — 对应 announcements
type Announcement struct {
	AnnouncementID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Message        string    `gorm:"type:text;not null"                             json:"message"`
	CreatedBy      string    `gorm:"type:uuid;not null"                             json:"created_by"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Announcement) TableName() string { return "announcements" }
