package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/cmd/api/dto"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
	"hridsync/models"
)

// senderFromIdentity maps the authenticated identity onto the tagged
// sender designation used by the message store.
func senderFromIdentity(userID primitive.ObjectID, role string) models.Sender {
	kind := models.SenderUser
	if role == "nutritionist" {
		kind = models.SenderNutritionist
	}
	return models.Sender{Kind: kind, ID: &userID}
}

func chatErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrNotParticipant):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrEmptyMessage), errors.Is(err, services.ErrInvalidMetadata):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "chat_failed"
	}
}

// StartChatHandler godoc
// @Summary      채팅 세션 시작
// @Description  상대방과의 세션을 반환합니다. 없으면 생성합니다. 같은 쌍에 대해 항상 같은 세션이 반환됩니다.
// @Tags         chat
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StartChatRequestDTO  true  "start chat request"
// @Success      200   {object}  dto.StartChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /chat/start [post]
func StartChatHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		var req dto.StartChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		counterpartID, err := primitive.ObjectIDFromHex(req.CounterpartID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_counterpart_id"})
			return
		}

		session, err := chatSvc.StartSession(c.Request.Context(), userID, counterpartID, false)
		if err != nil {
			logger.ErrorWithFields("start chat failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "start_chat_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.StartChatResponseDTO{SessionID: session.ID.Hex()})
	}
}

// StartNutritionistChatHandler godoc
// @Summary      영양사 채팅 세션 시작
// @Description  지정한 영양사와의 세션을 반환합니다. 없으면 생성합니다.
// @Tags         chat
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StartNutritionistChatRequestDTO  true  "start nutritionist chat request"
// @Success      200   {object}  dto.StartChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /chat/nutritionist [post]
func StartNutritionistChatHandler(chatSvc *services.ChatService, nutritionistSvc *services.NutritionistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		var req dto.StartNutritionistChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		profileID, err := primitive.ObjectIDFromHex(req.NutritionistID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_nutritionist_id"})
			return
		}

		// The directory exposes profile ids; sessions are keyed on accounts.
		counterpartID, err := nutritionistSvc.ResolveUserID(c.Request.Context(), profileID)
		if err != nil {
			if errors.Is(err, services.ErrNutritionistNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
			logger.ErrorWithFields("nutritionist lookup failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "start_chat_failed"})
			return
		}

		session, err := chatSvc.StartSession(c.Request.Context(), userID, counterpartID, true)
		if err != nil {
			logger.ErrorWithFields("start nutritionist chat failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "start_chat_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.StartChatResponseDTO{SessionID: session.ID.Hex()})
	}
}

// GetMessagesHandler godoc
// @Summary      세션 메시지 조회
// @Description  세션 참여자만 조회할 수 있습니다. 생성 시각 오름차순으로 반환합니다.
// @Tags         chat
// @Security     BearerAuth
// @Produce      json
// @Param        sessionId  path      string  true  "session id"
// @Success      200        {object}  dto.HistoryResponseDTO
// @Failure      401        {object}  dto.ErrorResponseDTO
// @Failure      403        {object}  dto.ErrorResponseDTO
// @Failure      404        {object}  dto.ErrorResponseDTO
// @Failure      500        {object}  dto.ErrorResponseDTO
// @Router       /chat/{sessionId}/messages [get]
func GetMessagesHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionId"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: services.ErrSessionNotFound.Error()})
			return
		}

		messages, err := chatSvc.History(c.Request.Context(), sessionID, userID, 0)
		if err != nil {
			status, code := chatErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.ErrorWithFields("get messages failed", errorFields(c, err))
			}
			c.JSON(status, dto.ErrorResponseDTO{Error: code})
			return
		}

		c.JSON(http.StatusOK, dto.HistoryResponseDTO{Messages: dto.NewChatMessageDTOs(messages)})
	}
}

// SendMessageHandler godoc
// @Summary      세션에 메시지 전송 (REST 폴백)
// @Description  라이브 연결 없이 메시지를 저장합니다. 저장된 메시지는 이벤트 버스를 통해 라이브 룸에도 전달됩니다.
// @Tags         chat
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        sessionId  path      string                    true  "session id"
// @Param        body       body      dto.SendMessageRequestDTO  true  "message"
// @Success      200        {object}  dto.SendMessageResponseDTO
// @Failure      400        {object}  dto.ErrorResponseDTO
// @Failure      401        {object}  dto.ErrorResponseDTO
// @Failure      403        {object}  dto.ErrorResponseDTO
// @Failure      404        {object}  dto.ErrorResponseDTO
// @Failure      500        {object}  dto.ErrorResponseDTO
// @Router       /chat/{sessionId}/message [post]
func SendMessageHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionId"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: services.ErrSessionNotFound.Error()})
			return
		}

		var req dto.SendMessageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		// Same membership rule as the realtime join path.
		if _, err := chatSvc.Authorize(c.Request.Context(), sessionID, userID); err != nil {
			status, code := chatErrorStatus(err)
			c.JSON(status, dto.ErrorResponseDTO{Error: code})
			return
		}

		sender := senderFromIdentity(userID, requesterRole(c))
		stored, err := chatSvc.Append(c.Request.Context(), sessionID, sender, req.Text, req.Metadata)
		if err != nil {
			status, code := chatErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.ErrorWithFields("send message failed", errorFields(c, err))
			}
			c.JSON(status, dto.ErrorResponseDTO{Error: code})
			return
		}

		// Push into live rooms. Best effort; the message is durable.
		if err := chatSvc.PublishMessage(c.Request.Context(), stored, ""); err != nil {
			logger.WarnWithFields("chat event publish failed", logger.Fields{
				"message_id": stored.ID.Hex(),
				"error":      err.Error(),
			})
		}

		c.JSON(http.StatusOK, dto.SendMessageResponseDTO{Message: dto.NewChatMessageDTO(*stored)})
	}
}

// AIChatHandler godoc
// @Summary      어시스턴트 채팅
// @Description  사용자별 어시스턴트 세션에 메시지를 저장하고 LLM 응답을 반환합니다.
// @Tags         chat
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AIChatRequestDTO  true  "message"
// @Success      200   {object}  dto.AIChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /chat/ai [post]
func AIChatHandler(aiSvc *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		var req dto.AIChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		reply, err := aiSvc.Chat(c.Request.Context(), userID, req.Message)
		if err != nil {
			logger.ErrorWithFields("assistant chat failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "assistant_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.AIChatResponseDTO{Reply: reply})
	}
}
