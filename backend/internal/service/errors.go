package service

import "errors"

// 业务层错误定义，handler 依据错误值映射 HTTP 状态码
var (
	// ── 认证 ──
	ErrEmailTaken        = errors.New("邮箱已被注册")
	ErrInvalidCredential = errors.New("邮箱或密码错误")
	ErrUserBanned        = errors.New("账号已被封禁")
	ErrInvalidToken      = errors.New("token 无效或已失效")

	// ── 用户 ──
	ErrUserNotFound      = errors.New("用户不存在")
	ErrProfileHidden     = errors.New("该用户资料不可见")
	ErrUploadUnavailable = errors.New("头像上传服务未配置")
	ErrSaveSelf          = errors.New("不能收藏自己的资料")

	// ── 交换请求 ──
	ErrRequestNotFound  = errors.New("交换请求不存在")
	ErrSelfRequest      = errors.New("不能向自己发起交换请求")
	ErrSkillMismatch    = errors.New("所选技能不满足双方的提供/需求条件")
	ErrAlreadyResponded = errors.New("请求已被处理，不能再次响应")
	ErrForbidden        = errors.New("无权执行该操作")

	// ── 聊天 ──
	ErrChatNotFound  = errors.New("聊天会话不存在")
	ErrNotChatMember = errors.New("不是该会话的成员")
	ErrChatLocked    = errors.New("请求未被接受，聊天不可用")

	// ── 评价 ──
	ErrFeedbackNotAllowed = errors.New("仅可评价已接受的交换")
	ErrFeedbackExists     = errors.New("已评价过该交换")
	ErrFeedbackTarget     = errors.New("评价对象必须是该交换的另一方")
)
