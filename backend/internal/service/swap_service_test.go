package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
)

type swapTestEnv struct {
	users     *mockUserRepo
	swaps     *mockSwapRepo
	chats     *mockChatRepo
	audits    *mockAuditRepo
	publisher *mockPublisher
	svc       SwapService
}

func newSwapTestEnv() *swapTestEnv {
	users := newMockUserRepo()
	chats := newMockChatRepo()
	swaps := newMockSwapRepo(chats)
	audits := newMockAuditRepo()
	publisher := &mockPublisher{}
	verify := NewVerifyService(users, swaps, testFeatureConfig(), testLogger)

	return &swapTestEnv{
		users:     users,
		swaps:     swaps,
		chats:     chats,
		audits:    audits,
		publisher: publisher,
		svc:       NewSwapService(swaps, users, audits, verify, publisher, testLogger),
	}
}

// 互补技能对：alice 教吉他想学西语，bob 教西语想学吉他
func (e *swapTestEnv) seedPair() (alice, bob *model.User) {
	alice = e.users.put(newTestUser("alice", []string{"吉他"}, []string{"西语"}))
	bob = e.users.put(newTestUser("bob", []string{"西语"}, []string{"吉他"}))
	return alice, bob
}

func TestCreateSwap_SelfRequest(t *testing.T) {
	env := newSwapTestEnv()
	alice, _ := env.seedPair()

	_, err := env.svc.Create(context.Background(), alice.UserID, &dto.CreateSwapRequest{
		ToUID:     alice.UserID,
		FromSkill: "吉他",
		ToSkill:   "西语",
	})
	if !errors.Is(err, ErrSelfRequest) {
		t.Errorf("err = %v, 期望 ErrSelfRequest", err)
	}
}

func TestCreateSwap_SkillMismatch(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()

	// bob 并不想学摄影
	_, err := env.svc.Create(context.Background(), alice.UserID, &dto.CreateSwapRequest{
		ToUID:     bob.UserID,
		FromSkill: "摄影",
		ToSkill:   "西语",
	})
	if !errors.Is(err, ErrSkillMismatch) {
		t.Errorf("err = %v, 期望 ErrSkillMismatch", err)
	}
}

func TestCreateSwap_TargetHidden(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()
	env.users.users[bob.UserID].IsPublic = false

	_, err := env.svc.Create(context.Background(), alice.UserID, &dto.CreateSwapRequest{
		ToUID:     bob.UserID,
		FromSkill: "吉他",
		ToSkill:   "西语",
	})
	if !errors.Is(err, ErrProfileHidden) {
		t.Errorf("err = %v, 期望 ErrProfileHidden", err)
	}
}

func TestCreateSwap_CreatesChatAndSnapshot(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()

	resp, err := env.svc.Create(context.Background(), alice.UserID, &dto.CreateSwapRequest{
		ToUID:     bob.UserID,
		FromSkill: "吉他",
		ToSkill:   "西语",
		Message:   "一起学吧",
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	if resp.Status != model.StatusPending {
		t.Errorf("状态 = %q, 期望 pending", resp.Status)
	}
	if resp.FromUser.Name != "alice" || resp.ToUser.Name != "bob" {
		t.Errorf("快照姓名 = %q/%q", resp.FromUser.Name, resp.ToUser.Name)
	}
	if resp.ChatID != resp.ID {
		t.Errorf("ChatID = %q, 应与请求 ID %q 一致", resp.ChatID, resp.ID)
	}
	if _, ok := env.chats.chats[resp.ID]; !ok {
		t.Error("创建请求时应同时创建聊天会话")
	}
}

func TestRespondSwap_OnlyRecipient(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()
	swap := env.swaps.put(&model.SwapRequest{
		FromUID: alice.UserID, ToUID: bob.UserID,
		FromName: "alice", ToName: "bob",
		FromSkill: "吉他", ToSkill: "西语",
		Status: model.StatusPending,
	})

	// 发起方不能替接收方做决定
	_, err := env.svc.Respond(context.Background(), alice.UserID, swap.SwapRequestID, "accept")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, 期望 ErrForbidden", err)
	}
}

func TestRespondSwap_AcceptIdempotent(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()
	swap := env.swaps.put(&model.SwapRequest{
		FromUID: alice.UserID, ToUID: bob.UserID,
		FromName: "alice", ToName: "bob",
		FromSkill: "吉他", ToSkill: "西语",
		Status: model.StatusPending,
	})

	resp, err := env.svc.Respond(context.Background(), bob.UserID, swap.SwapRequestID, "accept")
	if err != nil {
		t.Fatalf("响应失败: %v", err)
	}
	if resp.Status != model.StatusAccepted {
		t.Errorf("状态 = %q, 期望 accepted", resp.Status)
	}

	// 重复提交相同决定幂等成功
	resp2, err := env.svc.Respond(context.Background(), bob.UserID, swap.SwapRequestID, "accept")
	if err != nil {
		t.Fatalf("重复响应应幂等成功: %v", err)
	}
	if resp2.Status != model.StatusAccepted {
		t.Errorf("重复响应状态 = %q", resp2.Status)
	}

	// 改判被拒绝
	_, err = env.svc.Respond(context.Background(), bob.UserID, swap.SwapRequestID, "reject")
	if !errors.Is(err, ErrAlreadyResponded) {
		t.Errorf("改判 err = %v, 期望 ErrAlreadyResponded", err)
	}
}

func TestRespondSwap_AcceptNotifiesBothParties(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()
	swap := env.swaps.put(&model.SwapRequest{
		FromUID: alice.UserID, ToUID: bob.UserID,
		FromName: "alice", ToName: "bob",
		FromSkill: "吉他", ToSkill: "西语",
		Status: model.StatusPending,
	})

	if _, err := env.svc.Respond(context.Background(), bob.UserID, swap.SwapRequestID, "accept"); err != nil {
		t.Fatalf("响应失败: %v", err)
	}

	if len(env.publisher.events) != 2 {
		t.Fatalf("推送事件数 = %d, 期望双方各一条", len(env.publisher.events))
	}
	for _, ev := range env.publisher.events {
		if ev.eventType != "request.status" {
			t.Errorf("事件类型 = %q", ev.eventType)
		}
	}
}

func TestDeleteSwap_StrangerForbidden(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()
	mallory := env.users.put(newTestUser("mallory", nil, nil))
	swap := env.swaps.put(&model.SwapRequest{
		FromUID: alice.UserID, ToUID: bob.UserID,
		FromName: "alice", ToName: "bob",
		FromSkill: "吉他", ToSkill: "西语",
		Status: model.StatusPending,
	})

	if err := env.svc.Delete(context.Background(), mallory.UserID, model.RoleUser, swap.SwapRequestID); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, 期望 ErrForbidden", err)
	}

	// 双方可删
	if err := env.svc.Delete(context.Background(), alice.UserID, model.RoleUser, swap.SwapRequestID); err != nil {
		t.Fatalf("发起方删除失败: %v", err)
	}
	if env.swaps.deleted[swap.SwapRequestID] != alice.UserID {
		t.Error("软删除应记录操作人")
	}
}

func TestSwapService_DeleteByAdmin(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()

	swap := env.swaps.put(&model.SwapRequest{
		FromUID: alice.UserID, ToUID: bob.UserID,
		FromName: "alice", ToName: "bob",
		FromSkill: "吉他", ToSkill: "西语",
		Status: model.StatusPending,
	})

	// 管理员可删除任意请求（仲裁场景）
	if err := env.svc.Delete(context.Background(), "admin-1", model.RoleAdmin, swap.SwapRequestID); err != nil {
		t.Fatalf("管理员删除失败: %v", err)
	}
	if env.swaps.deleted[swap.SwapRequestID] != "admin-1" {
		t.Error("软删除应记录操作人")
	}
}

func TestOverrideStatus_WritesAudit(t *testing.T) {
	env := newSwapTestEnv()
	alice, bob := env.seedPair()
	admin := env.users.put(newTestUser("admin", nil, nil))
	swap := env.swaps.put(&model.SwapRequest{
		FromUID: alice.UserID, ToUID: bob.UserID,
		FromName: "alice", ToName: "bob",
		FromSkill: "吉他", ToSkill: "西语",
		Status: model.StatusAccepted,
	})

	// 管理员回退已接受的请求
	resp, err := env.svc.OverrideStatus(context.Background(), admin.UserID, swap.SwapRequestID, &dto.OverrideStatusRequest{
		Status: model.StatusPending,
		Reason: "误操作回退",
	})
	if err != nil {
		t.Fatalf("改写失败: %v", err)
	}
	if resp.Status != model.StatusPending {
		t.Errorf("状态 = %q, 期望 pending", resp.Status)
	}

	audits, _ := env.audits.ListByRequest(context.Background(), swap.SwapRequestID)
	if len(audits) != 1 {
		t.Fatalf("审计记录数 = %d, 期望 1", len(audits))
	}
	if audits[0].OldStatus != model.StatusAccepted || audits[0].NewStatus != model.StatusPending {
		t.Errorf("审计 = %s → %s", audits[0].OldStatus, audits[0].NewStatus)
	}
	if audits[0].AdminUID != admin.UserID {
		t.Error("审计应记录操作管理员")
	}
}
