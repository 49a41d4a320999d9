package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestIDKey 请求 ID 上下文键
const CtxRequestIDKey = "request_id"

// RequestID 为每个请求生成或透传 X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(CtxRequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
