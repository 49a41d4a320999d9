package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Swap         SwapRequestRepository
	Chat         ChatRepository
	Feedback     FeedbackRepository
	SavedProfile SavedProfileRepository
	Announcement AnnouncementRepository
	Audit        SwapStatusAuditRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Swap:         NewSwapRequestRepo(db),
		Chat:         NewChatRepo(db),
		Feedback:     NewFeedbackRepo(db),
		SavedProfile: NewSavedProfileRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Audit:        NewSwapStatusAuditRepo(db),
	}
}
