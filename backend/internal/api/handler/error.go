package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/response"
)

// handleServiceError 将业务错误映射为 HTTP 响应
// 未识别的错误统一返回 500 并记录日志
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredential),
		errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, response.CodeUnauthorized, err.Error())

	case errors.Is(err, service.ErrUserBanned),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotChatMember),
		errors.Is(err, service.ErrChatLocked),
		errors.Is(err, service.ErrFeedbackNotAllowed):
		response.Forbidden(c, response.CodeForbidden, err.Error())

	// 私密资料按不存在处理，避免泄露用户存在性
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProfileHidden),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrChatNotFound):
		response.NotFound(c, response.CodeNotFound, err.Error())

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyResponded),
		errors.Is(err, service.ErrFeedbackExists):
		response.Conflict(c, response.CodeConflict, err.Error())

	case errors.Is(err, service.ErrSelfRequest),
		errors.Is(err, service.ErrSkillMismatch),
		errors.Is(err, service.ErrFeedbackTarget),
		errors.Is(err, service.ErrSaveSelf):
		response.BadRequest(c, response.CodeInvalidParam, err.Error())

	case errors.Is(err, service.ErrUploadUnavailable):
		response.Error(c, http.StatusServiceUnavailable, response.CodeInternal, err.Error())

	default:
		logger.Error("业务处理失败",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}
