package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是請求識別碼使用的 HTTP 標頭名稱
const RequestIDHeader = "X-Request-ID"

// RequestID 是一個 Gin 中間件，為每個請求附加唯一的識別碼
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 呼叫端已帶識別碼時沿用，否則產生新的
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
