package middleware

import (
	"github.com/gin-gonic/gin"

	"hridsync/cmd/api/auth"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
)

// Context keys set by UserAuthMiddleware.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// UserAuthMiddleware 는 요청 헤더의 JWT를 검증하고 사용자 id/role을
// 컨텍스트에 저장합니다. 모든 인증 필요 엔드포인트가 공유합니다.
func UserAuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, role, err := authSvc.ParseAccessToken(token)
		if err != nil {
			logger.DebugWithFields("token parse error", logger.Fields{"error": err.Error()})
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)

		c.Next()
	}
}
