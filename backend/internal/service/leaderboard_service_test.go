package service

import (
	"context"
	"testing"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

func TestLeaderboard_Ordering(t *testing.T) {
	users := newMockUserRepo()
	swaps := newMockSwapRepo(newMockChatRepo())

	// a: 2 次交换、均分 4.0；b: 2 次、均分 4.8；c: 1 次
	a := newTestUser("a", nil, nil)
	a.Rating = 4.0
	users.put(a)
	b := newTestUser("b", nil, nil)
	b.Rating = 4.8
	users.put(b)
	c := newTestUser("c", nil, nil)
	c.Rating = 5.0
	users.put(c)

	swaps.put(newAcceptedSwap(a.UserID, "x", b.UserID, "y"))
	swaps.put(newAcceptedSwap(b.UserID, "y", a.UserID, "x"))
	swaps.put(newAcceptedSwap(c.UserID, "z", "ghost", "w"))

	svc := NewLeaderboardService(swaps, users, nil, testFeatureConfig(), testLogger)
	entries, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("获取排行榜失败: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("条目数 = %d, 期望 3", len(entries))
	}
	// 同为 2 次交换，均分高的 b 排在 a 前；c 只有 1 次排最后
	if entries[0].UserID != b.UserID || entries[1].UserID != a.UserID || entries[2].UserID != c.UserID {
		t.Errorf("排序 = [%s %s %s], 期望 [b a c]",
			entries[0].Name, entries[1].Name, entries[2].Name)
	}
	if entries[0].SwapsCount != 2 {
		t.Errorf("b 交换数 = %d, 期望 2", entries[0].SwapsCount)
	}
}

func TestLeaderboard_BannedExcluded(t *testing.T) {
	users := newMockUserRepo()
	swaps := newMockSwapRepo(newMockChatRepo())

	a := users.put(newTestUser("a", nil, nil))
	banned := newTestUser("banned", nil, nil)
	banned.IsBanned = true
	users.put(banned)

	swaps.put(newAcceptedSwap(a.UserID, "x", banned.UserID, "y"))

	svc := NewLeaderboardService(swaps, users, nil, testFeatureConfig(), testLogger)
	entries, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("获取排行榜失败: %v", err)
	}

	if len(entries) != 1 || entries[0].UserID != a.UserID {
		t.Errorf("entries = %+v, 封禁用户不应上榜", entries)
	}
}

func TestLeaderboard_SizeCap(t *testing.T) {
	users := newMockUserRepo()
	swaps := newMockSwapRepo(newMockChatRepo())
	cfg := testFeatureConfig()
	cfg.LeaderboardSize = 2

	for i := 0; i < 4; i++ {
		u := users.put(newTestUser(string(rune('a'+i)), nil, nil))
		swaps.put(newAcceptedSwap(u.UserID, "x", "ghost", "y"))
	}

	svc := NewLeaderboardService(swaps, users, nil, cfg, testLogger)
	entries, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("获取排行榜失败: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("条目数 = %d, 期望截断到 2", len(entries))
	}
}

func TestLeaderboard_SnapshotCache(t *testing.T) {
	users := newMockUserRepo()
	swaps := newMockSwapRepo(newMockChatRepo())
	a := users.put(newTestUser("a", nil, nil))
	swaps.put(newAcceptedSwap(a.UserID, "x", "ghost", "y"))

	cache := &mockSnapshotCache{}
	svc := NewLeaderboardService(swaps, users, cache, testFeatureConfig(), testLogger)

	first, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("首次获取失败: %v", err)
	}
	if cache.snapshot == "" {
		t.Fatal("首次计算后应写入快照")
	}

	// 快照有效期内新增的交换不影响结果
	swaps.put(newAcceptedSwap(a.UserID, "x", "ghost2", "y"))
	second, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("二次获取失败: %v", err)
	}
	if len(second) != len(first) || second[0].SwapsCount != first[0].SwapsCount {
		t.Errorf("快照命中时应返回缓存结果: first=%+v second=%+v", first[0], second[0])
	}
}

func TestLeaderboard_PendingNotCounted(t *testing.T) {
	users := newMockUserRepo()
	swaps := newMockSwapRepo(newMockChatRepo())
	a := users.put(newTestUser("a", nil, nil))

	pending := newAcceptedSwap(a.UserID, "x", "ghost", "y")
	pending.Status = model.StatusPending
	swaps.put(pending)

	svc := NewLeaderboardService(swaps, users, nil, testFeatureConfig(), testLogger)
	entries, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("获取排行榜失败: %v", err)
	}
	if len(entries) != 1 || entries[0].SwapsCount != 0 {
		t.Errorf("entries = %+v, pending 请求不应计入交换数", entries)
	}
}

func TestLeaderboard_ZeroSwapUsersListed(t *testing.T) {
	users := newMockUserRepo()
	swaps := newMockSwapRepo(newMockChatRepo())

	active := users.put(newTestUser("active", nil, nil))
	idle := users.put(newTestUser("idle", nil, nil))
	swaps.put(newAcceptedSwap(active.UserID, "x", "ghost", "y"))

	svc := NewLeaderboardService(swaps, users, nil, testFeatureConfig(), testLogger)
	entries, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("获取排行榜失败: %v", err)
	}

	// 没有交换记录的用户也上榜，计 0 次，排在有交换的用户之后
	if len(entries) != 2 {
		t.Fatalf("条目数 = %d, 期望 2", len(entries))
	}
	if entries[0].UserID != active.UserID || entries[0].SwapsCount != 1 {
		t.Errorf("entries[0] = %+v, 期望 active 计 1 次", entries[0])
	}
	if entries[1].UserID != idle.UserID || entries[1].SwapsCount != 0 {
		t.Errorf("entries[1] = %+v, 期望 idle 计 0 次", entries[1])
	}
}
