package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/dto"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/jwt"
)

func newTestAuthService(users *mockUserRepo, tokens *mockTokenStore) (AuthService, *jwt.Manager) {
	jwtMgr := jwt.NewManager(testAuthConfig())
	return NewAuthService(users, jwtMgr, tokens, testAuthConfig(), testLogger), jwtMgr
}

func TestRegister_Success(t *testing.T) {
	users := newMockUserRepo()
	svc, _ := newTestAuthService(users, newMockTokenStore())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("注册后应返回 Token 对")
	}
	if resp.User.Name != "alice" {
		t.Errorf("用户名 = %q, 期望 alice", resp.User.Name)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	users := newMockUserRepo()
	users.put(newTestUser("alice", nil, nil))
	svc, _ := newTestAuthService(users, newMockTokenStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, 期望 ErrEmailTaken", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMockUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	u := newTestUser("alice", nil, nil)
	u.PasswordHash = string(hash)
	users.put(u)
	svc, _ := newTestAuthService(users, newMockTokenStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("err = %v, 期望 ErrInvalidCredential", err)
	}
}

func TestLogin_BannedUser(t *testing.T) {
	users := newMockUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	u := newTestUser("alice", nil, nil)
	u.PasswordHash = string(hash)
	u.IsBanned = true
	users.put(u)
	svc, _ := newTestAuthService(users, newMockTokenStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrUserBanned) {
		t.Errorf("err = %v, 期望 ErrUserBanned", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	users := newMockUserRepo()
	u := users.put(newTestUser("alice", nil, nil))
	svc, jwtMgr := newTestAuthService(users, newMockTokenStore())

	// Access Token 不能用于刷新
	accessToken, err := jwtMgr.GenerateAccessToken(u.UserID, u.Role)
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	_, err = svc.Refresh(context.Background(), accessToken)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, 期望 ErrInvalidToken", err)
	}
}

func TestRefresh_RotatesOldToken(t *testing.T) {
	users := newMockUserRepo()
	u := users.put(newTestUser("alice", nil, nil))
	tokens := newMockTokenStore()
	svc, jwtMgr := newTestAuthService(users, tokens)

	refreshToken, err := jwtMgr.GenerateRefreshToken(u.UserID, u.Role)
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), refreshToken); err != nil {
		t.Fatalf("刷新失败: %v", err)
	}

	// 旧 Refresh Token 已被拉黑，二次使用应失败
	if _, err := svc.Refresh(context.Background(), refreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("二次刷新 err = %v, 期望 ErrInvalidToken", err)
	}
}

func TestLogout_BlacklistsToken(t *testing.T) {
	users := newMockUserRepo()
	u := users.put(newTestUser("alice", nil, nil))
	tokens := newMockTokenStore()
	svc, jwtMgr := newTestAuthService(users, tokens)

	accessToken, err := jwtMgr.GenerateAccessToken(u.UserID, u.Role)
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}
	claims, err := jwtMgr.ParseToken(accessToken)
	if err != nil {
		t.Fatalf("解析 Token 失败: %v", err)
	}

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("登出失败: %v", err)
	}
	if !tokens.blacklisted[claims.ID] {
		t.Error("登出后 jti 应在黑名单中")
	}
}
