package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
)

// 内存版 Repository 实现，供服务层单元测试使用

// ── 用户 ──

type mockUserRepo struct {
	users       map[string]*model.User
	recalcCalls []string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) put(u *model.User) *model.User {
	if u.UserID == "" {
		u.UserID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users[u.UserID] = u
	return u
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.put(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateVerifiedSkills(_ context.Context, id string, skills model.StringArray) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.VerifiedSkills = skills
	return nil
}

func (m *mockUserRepo) RecalcRatingStats(_ context.Context, id string) error {
	m.recalcCalls = append(m.recalcCalls, id)
	return nil
}

func (m *mockUserRepo) BrowsePublic(_ context.Context, filters *repository.BrowseFilters, offset, limit int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range m.users {
		if !u.IsPublic || u.IsBanned {
			continue
		}
		if filters != nil && filters.Keyword != "" && !matchKeyword(u, filters.Keyword) {
			continue
		}
		if filters != nil && filters.Availability != "" && !u.Availability.Contains(filters.Availability) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	total := int64(len(out))
	out = page(out, offset, limit)
	return out, total, nil
}

func matchKeyword(u *model.User, kw string) bool {
	kw = strings.ToLower(kw)
	if strings.Contains(strings.ToLower(u.Name), kw) {
		return true
	}
	for _, s := range u.SkillsOffered {
		if strings.Contains(strings.ToLower(s), kw) {
			return true
		}
	}
	for _, s := range u.SkillsWanted {
		if strings.Contains(strings.ToLower(s), kw) {
			return true
		}
	}
	return false
}

func (m *mockUserRepo) ListAll(_ context.Context, filters *repository.AdminUserFilters, offset, limit int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range m.users {
		if filters != nil && filters.Banned != nil && u.IsBanned != *filters.Banned {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	total := int64(len(out))
	out = page(out, offset, limit)
	return out, total, nil
}

func (m *mockUserRepo) ListByIDs(_ context.Context, ids []string) ([]model.User, error) {
	var out []model.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func page[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// ── 交换请求 ──

type mockSwapRepo struct {
	swaps   map[string]*model.SwapRequest
	deleted map[string]string // request_id → deleted_by
	chats   *mockChatRepo
}

func newMockSwapRepo(chats *mockChatRepo) *mockSwapRepo {
	return &mockSwapRepo{
		swaps:   make(map[string]*model.SwapRequest),
		deleted: make(map[string]string),
		chats:   chats,
	}
}

func (m *mockSwapRepo) put(r *model.SwapRequest) *model.SwapRequest {
	if r.SwapRequestID == "" {
		r.SwapRequestID = uuid.New().String()
	}
	m.swaps[r.SwapRequestID] = r
	return r
}

func (m *mockSwapRepo) CreateWithChat(_ context.Context, req *model.SwapRequest, chat *model.Chat) error {
	m.put(req)
	chat.ChatID = req.SwapRequestID
	if m.chats != nil {
		m.chats.chats[chat.ChatID] = chat
	}
	return nil
}

func (m *mockSwapRepo) GetByID(_ context.Context, id string) (*model.SwapRequest, error) {
	if _, gone := m.deleted[id]; gone {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := m.swaps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockSwapRepo) UpdateStatus(_ context.Context, id, status string) error {
	r, ok := m.swaps[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = status
	return nil
}

func (m *mockSwapRepo) Delete(_ context.Context, id string, deletedBy string) error {
	if _, ok := m.swaps[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.deleted[id] = deletedBy
	return nil
}

func (m *mockSwapRepo) ListForUser(_ context.Context, uid string, filters *repository.SwapListFilters, offset, limit int) ([]model.SwapRequest, int64, error) {
	var out []model.SwapRequest
	for id, r := range m.swaps {
		if _, gone := m.deleted[id]; gone {
			continue
		}
		switch {
		case filters != nil && filters.Direction == "incoming":
			if r.ToUID != uid {
				continue
			}
		case filters != nil && filters.Direction == "outgoing":
			if r.FromUID != uid {
				continue
			}
		default:
			if !r.Involves(uid) {
				continue
			}
		}
		if filters != nil && filters.Status != "" && r.Status != filters.Status {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SwapRequestID < out[j].SwapRequestID })
	total := int64(len(out))
	out = page(out, offset, limit)
	return out, total, nil
}

func (m *mockSwapRepo) ListAll(_ context.Context, offset, limit int) ([]model.SwapRequest, int64, error) {
	var out []model.SwapRequest
	for id, r := range m.swaps {
		if _, gone := m.deleted[id]; gone {
			continue
		}
		out = append(out, *r)
	}
	total := int64(len(out))
	out = page(out, offset, limit)
	return out, total, nil
}

func (m *mockSwapRepo) ListAccepted(_ context.Context) ([]model.SwapRequest, error) {
	var out []model.SwapRequest
	for id, r := range m.swaps {
		if _, gone := m.deleted[id]; gone {
			continue
		}
		if r.Status == model.StatusAccepted {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockSwapRepo) CountAcceptedSkill(_ context.Context, uid, skill string) (int64, error) {
	var count int64
	for id, r := range m.swaps {
		if _, gone := m.deleted[id]; gone {
			continue
		}
		if r.Status != model.StatusAccepted {
			continue
		}
		if r.FromUID == uid && r.FromSkill == skill {
			count++
		}
		if r.ToUID == uid && r.ToSkill == skill {
			count++
		}
	}
	return count, nil
}

// ── 聊天 ──

type mockChatRepo struct {
	chats    map[string]*model.Chat
	messages map[string][]model.ChatMessage
}

func newMockChatRepo() *mockChatRepo {
	return &mockChatRepo{
		chats:    make(map[string]*model.Chat),
		messages: make(map[string][]model.ChatMessage),
	}
}

func (m *mockChatRepo) GetByID(_ context.Context, chatID string) (*model.Chat, error) {
	c, ok := m.chats[chatID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockChatRepo) AppendMessage(_ context.Context, msg *model.ChatMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	m.messages[msg.ChatID] = append(m.messages[msg.ChatID], *msg)
	return nil
}

func (m *mockChatRepo) ListMessages(_ context.Context, chatID string) ([]model.ChatMessage, error) {
	return m.messages[chatID], nil
}

// ── 评价 ──

type mockFeedbackRepo struct {
	items []model.Feedback
}

func newMockFeedbackRepo() *mockFeedbackRepo { return &mockFeedbackRepo{} }

func (m *mockFeedbackRepo) Create(_ context.Context, fb *model.Feedback) error {
	if fb.FeedbackID == "" {
		fb.FeedbackID = uuid.New().String()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	m.items = append(m.items, *fb)
	return nil
}

func (m *mockFeedbackRepo) ListForUser(_ context.Context, toUID string) ([]model.Feedback, error) {
	var out []model.Feedback
	for _, fb := range m.items {
		if fb.ToUID == toUID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (m *mockFeedbackRepo) ExistsByReviewerAndRequest(_ context.Context, fromUID, requestID string) (bool, error) {
	for _, fb := range m.items {
		if fb.FromUID == fromUID && fb.RequestID == requestID {
			return true, nil
		}
	}
	return false, nil
}

// ── 收藏 ──

type mockSavedRepo struct {
	saved map[string][]string // owner → targets（按收藏顺序）
}

func newMockSavedRepo() *mockSavedRepo {
	return &mockSavedRepo{saved: make(map[string][]string)}
}

func (m *mockSavedRepo) Save(_ context.Context, ownerUID, targetUID string) error {
	for _, t := range m.saved[ownerUID] {
		if t == targetUID {
			return nil // 幂等
		}
	}
	m.saved[ownerUID] = append(m.saved[ownerUID], targetUID)
	return nil
}

func (m *mockSavedRepo) Remove(_ context.Context, ownerUID, targetUID string) error {
	targets := m.saved[ownerUID]
	for i, t := range targets {
		if t == targetUID {
			m.saved[ownerUID] = append(targets[:i], targets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockSavedRepo) ListTargetIDs(_ context.Context, ownerUID string) ([]string, error) {
	return append([]string(nil), m.saved[ownerUID]...), nil
}

// ── 公告 ──

type mockAnnouncementRepo struct {
	items []model.Announcement
}

func newMockAnnouncementRepo() *mockAnnouncementRepo { return &mockAnnouncementRepo{} }

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if a.AnnouncementID == "" {
		a.AnnouncementID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.items = append(m.items, *a)
	return nil
}

func (m *mockAnnouncementRepo) List(_ context.Context, limit int) ([]model.Announcement, error) {
	out := append([]model.Announcement(nil), m.items...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── 审计 ──

type mockAuditRepo struct {
	items []model.SwapStatusAudit
}

func newMockAuditRepo() *mockAuditRepo { return &mockAuditRepo{} }

func (m *mockAuditRepo) Create(_ context.Context, audit *model.SwapStatusAudit) error {
	if audit.AuditID == "" {
		audit.AuditID = uuid.New().String()
	}
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now()
	}
	m.items = append(m.items, *audit)
	return nil
}

func (m *mockAuditRepo) ListByRequest(_ context.Context, requestID string) ([]model.SwapStatusAudit, error) {
	var out []model.SwapStatusAudit
	for _, a := range m.items {
		if a.RequestID == requestID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ── 实时推送 ──

type publishedEvent struct {
	room      string
	eventType string
}

type mockPublisher struct {
	events []publishedEvent
}

func (m *mockPublisher) Publish(room string, eventType string, _ any) {
	m.events = append(m.events, publishedEvent{room: room, eventType: eventType})
}

// ── Token 黑名单 ──

type mockTokenStore struct {
	blacklisted map[string]bool
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{blacklisted: make(map[string]bool)}
}

func (m *mockTokenStore) BlacklistToken(_ context.Context, jti string, _ time.Duration) error {
	m.blacklisted[jti] = true
	return nil
}

func (m *mockTokenStore) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	return m.blacklisted[jti], nil
}

// ── 排行榜快照 ──

type mockSnapshotCache struct {
	snapshot string
}

func (m *mockSnapshotCache) GetLeaderboardSnapshot(_ context.Context) (string, error) {
	return m.snapshot, nil
}

func (m *mockSnapshotCache) SetLeaderboardSnapshot(_ context.Context, payload string, _ time.Duration) error {
	m.snapshot = payload
	return nil
}
