package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/cmd/api/auth"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
)

func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// non-browser clients (mobile apps, tests) send no Origin
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
	}
}

// ServeWS godoc
// @Summary      실시간 채팅 연결
// @Description  JWT로 인증된 WebSocket 연결을 수립합니다. 토큰은 Authorization 헤더 또는 token 쿼리 파라미터로 전달합니다.
// @Tags         chat
// @Param        token  query  string  false  "액세스 토큰 (Authorization 헤더 미사용 시)"
// @Success      101  {string}  string  "Switching Protocols"
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /ws [get]
func ServeWS(hub *Hub, authSvc *services.AuthService, allowedOrigins []string) gin.HandlerFunc {
	upgrader := newUpgrader(allowedOrigins)

	return func(c *gin.Context) {
		token, err := auth.ExtractHandshakeToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userHex, role, err := authSvc.ParseAccessToken(token)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}
		userID, err := primitive.ObjectIDFromHex(userHex)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response
			logger.DebugWithFields("websocket upgrade failed", logger.Fields{
				"error": err.Error(),
			})
			return
		}

		client := &client{
			id:     uuid.NewString(),
			hub:    hub,
			conn:   conn,
			send:   make(chan ServerEvent, sendBufferSize),
			userID: userID,
			role:   role,
		}

		logger.InfoWithFields("chat connection established", logger.Fields{
			"connection_id": client.id,
			"user_id":       userHex,
			"role":          role,
		})

		go client.writePump()
		go client.readPump()
	}
}
