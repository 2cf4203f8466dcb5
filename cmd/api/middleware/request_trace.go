package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hridsync/cmd/api/trace"
	"hridsync/internal/logger"
)

const headerRequestID = "X-Request-Id"

// RequestTrace는 모든 inbound HTTP 요청에 대해 Request ID를 보장하고,
// 이를 컨텍스트/응답 헤더에 저장한 뒤 완료 로그에 포함시킨다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		c.Request = req.WithContext(trace.WithRequestID(req.Context(), requestID))
		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": requestID,
		})
	}
}
