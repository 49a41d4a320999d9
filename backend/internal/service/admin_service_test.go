package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/model"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/realtime"
)

type adminTestEnv struct {
	users         *mockUserRepo
	swaps         *mockSwapRepo
	announcements *mockAnnouncementRepo
	publisher     *mockPublisher
	svc           AdminService
}

func newAdminTestEnv() *adminTestEnv {
	users := newMockUserRepo()
	swaps := newMockSwapRepo(newMockChatRepo())
	announcements := newMockAnnouncementRepo()
	publisher := &mockPublisher{}
	verify := NewVerifyService(users, swaps, testFeatureConfig(), testLogger)
	return &adminTestEnv{
		users:         users,
		swaps:         swaps,
		announcements: announcements,
		publisher:     publisher,
		svc:           NewAdminService(users, announcements, verify, publisher, testLogger),
	}
}

func TestSetBanned_Toggle(t *testing.T) {
	env := newAdminTestEnv()
	alice := env.users.put(newTestUser("alice", nil, nil))

	if err := env.svc.SetBanned(context.Background(), alice.UserID, true); err != nil {
		t.Fatalf("封禁失败: %v", err)
	}
	if !env.users.users[alice.UserID].IsBanned {
		t.Error("用户应处于封禁状态")
	}

	// 重复封禁幂等
	if err := env.svc.SetBanned(context.Background(), alice.UserID, true); err != nil {
		t.Errorf("重复封禁应幂等: %v", err)
	}

	if err := env.svc.SetBanned(context.Background(), alice.UserID, false); err != nil {
		t.Fatalf("解封失败: %v", err)
	}
	if env.users.users[alice.UserID].IsBanned {
		t.Error("用户应已解封")
	}
}

func TestRemoveSkill_OfferedDropsVerification(t *testing.T) {
	env := newAdminTestEnv()
	alice := newTestUser("alice", []string{"吉他", "违规内容"}, nil)
	alice.VerifiedSkills = model.StringArray{"违规内容"}
	env.users.put(alice)

	err := env.svc.RemoveSkill(context.Background(), alice.UserID, &dto.RemoveSkillRequest{
		Field: "offered",
		Skill: "违规内容",
	})
	if err != nil {
		t.Fatalf("移除失败: %v", err)
	}

	got := env.users.users[alice.UserID]
	if got.SkillsOffered.Contains("违规内容") {
		t.Error("技能应已从提供列表移除")
	}
	if got.VerifiedSkills.Contains("违规内容") {
		t.Error("移除的技能应同时失去认证")
	}
	if !got.SkillsOffered.Contains("吉他") {
		t.Error("其他技能不应受影响")
	}
}

func TestCreateAnnouncement_Broadcasts(t *testing.T) {
	env := newAdminTestEnv()
	admin := env.users.put(newTestUser("admin", nil, nil))

	resp, err := env.svc.CreateAnnouncement(context.Background(), admin.UserID, &dto.CreateAnnouncementRequest{
		Title:   "系统维护",
		Message: "周日凌晨升级",
	})
	if err != nil {
		t.Fatalf("发布失败: %v", err)
	}
	if resp.Title != "系统维护" {
		t.Errorf("Title = %q", resp.Title)
	}

	if len(env.publisher.events) != 1 {
		t.Fatalf("推送事件数 = %d, 期望 1", len(env.publisher.events))
	}
	ev := env.publisher.events[0]
	if ev.room != realtime.BroadcastRoom || ev.eventType != realtime.EventAnnouncement {
		t.Errorf("事件 = %+v, 期望广播房间的公告事件", ev)
	}
}

func TestExportUsers_ProducesWorkbook(t *testing.T) {
	env := newAdminTestEnv()
	env.users.put(newTestUser("alice", []string{"吉他"}, []string{"西语"}))
	env.users.put(newTestUser("bob", nil, nil))

	data, err := env.svc.ExportUsers(context.Background())
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出内容不是合法的 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Users")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 表头 + 2 个用户
	if len(rows) != 3 {
		t.Errorf("行数 = %d, 期望 3", len(rows))
	}
}
