package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
)

// SnapshotCache 排行榜快照缓存
// 由 Redis 实现，传 nil 时每次请求实时计算
type SnapshotCache interface {
	GetLeaderboardSnapshot(ctx context.Context) (string, error)
	SetLeaderboardSnapshot(ctx context.Context, payload string, ttl time.Duration) error
}

// LeaderboardService 排行榜服务接口
type LeaderboardService interface {
	// Get 返回按已完成交换数降序（同数按均分降序）的前 N 名用户
	Get(ctx context.Context) ([]dto.LeaderboardEntry, error)
}

// leaderboardService LeaderboardService 实现
type leaderboardService struct {
	swaps    repository.SwapRequestRepository
	users    repository.UserRepository
	cache    SnapshotCache
	size     int
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewLeaderboardService 创建排行榜服务
func NewLeaderboardService(swaps repository.SwapRequestRepository, users repository.UserRepository, cache SnapshotCache, cfg *config.FeatureConfig, logger *zap.Logger) LeaderboardService {
	return &leaderboardService{
		swaps:    swaps,
		users:    users,
		cache:    cache,
		size:     cfg.LeaderboardSize,
		cacheTTL: cfg.LeaderboardCacheTTL,
		logger:   logger,
	}
}

func (s *leaderboardService) Get(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	// 快照命中直接返回，排行榜允许短暂滞后
	if s.cache != nil {
		snapshot, err := s.cache.GetLeaderboardSnapshot(ctx)
		if err != nil {
			s.logger.Warn("排行榜快照读取失败", zap.Error(err))
		} else if snapshot != "" {
			var entries []dto.LeaderboardEntry
			if err := json.Unmarshal([]byte(snapshot), &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.cache.SetLeaderboardSnapshot(ctx, string(payload), s.cacheTTL); err != nil {
				s.logger.Warn("排行榜快照写入失败", zap.Error(err))
			}
		}
	}

	return entries, nil
}

func (s *leaderboardService) compute(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	accepted, err := s.swaps.ListAccepted(ctx)
	if err != nil {
		return nil, err
	}

	// 双方各计一次
	counts := make(map[string]int)
	for i := range accepted {
		counts[accepted[i].FromUID]++
		counts[accepted[i].ToUID]++
	}

	// 零交换用户同样上榜（计 0 次），按页遍历全量用户
	const pageSize = 500
	var entries []dto.LeaderboardEntry
	for page := 0; ; page++ {
		users, _, err := s.users.ListAll(ctx, nil, page*pageSize, pageSize)
		if err != nil {
			return nil, err
		}
		for i := range users {
			u := &users[i]
			if u.IsBanned {
				continue
			}
			entry := dto.LeaderboardEntry{
				UserID:        u.UserID,
				Name:          u.Name,
				SwapsCount:    counts[u.UserID],
				AverageRating: u.Rating,
			}
			if u.PhotoURL != nil {
				entry.PhotoURL = *u.PhotoURL
			}
			if u.Location != nil {
				entry.Location = *u.Location
			}
			entries = append(entries, entry)
		}
		if len(users) < pageSize {
			break
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].SwapsCount != entries[j].SwapsCount {
			return entries[i].SwapsCount > entries[j].SwapsCount
		}
		return entries[i].AverageRating > entries[j].AverageRating
	})

	if len(entries) > s.size {
		entries = entries[:s.size]
	}
	return entries, nil
}
