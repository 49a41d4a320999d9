package dto

// ── 排行榜模块 DTO ──

// LeaderboardEntry 排行榜单行
// 排序规则：SwapsCount 降序，相同时 AverageRating 降序
type LeaderboardEntry struct {
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	PhotoURL      string  `json:"photo_url,omitempty"`
	Location      string  `json:"location,omitempty"`
	SwapsCount    int     `json:"swaps_count"`
	AverageRating float64 `json:"average_rating"`
}
