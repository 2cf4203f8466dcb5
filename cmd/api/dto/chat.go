package dto

import (
	"time"

	"hridsync/models"
)

// StartChatRequestDTO는 /chat/start 요청 바디이다. 상대방 user id를 받는다.
type StartChatRequestDTO struct {
	CounterpartID string `json:"counterpart_id" binding:"required" example:"665f1c2ab1e4a2d3c4e5f602"`
}

// StartNutritionistChatRequestDTO는 /chat/nutritionist 요청 바디이다.
type StartNutritionistChatRequestDTO struct {
	NutritionistID string `json:"nutritionist_id" binding:"required" example:"665f1c2ab1e4a2d3c4e5f603"`
}

// StartChatResponseDTO는 세션 시작 응답이다.
type StartChatResponseDTO struct {
	SessionID string `json:"session_id" example:"665f1c2ab1e4a2d3c4e5f604"`
}

// SenderDTO는 메시지 발신자의 단일 태그 표현이다.
// kind: user | nutritionist | assistant
type SenderDTO struct {
	Kind string `json:"kind" example:"user"`
	ID   string `json:"id,omitempty" example:"665f1c2ab1e4a2d3c4e5f601"`
}

// ChatMessageDTO는 REST/실시간 양쪽에서 사용하는 메시지 표현이다.
type ChatMessageDTO struct {
	ID        string          `json:"id" example:"665f1c2ab1e4a2d3c4e5f605"`
	SessionID string          `json:"session_id" example:"665f1c2ab1e4a2d3c4e5f604"`
	Sender    SenderDTO       `json:"sender"`
	Text      string          `json:"text" example:"hello"`
	Metadata  models.Metadata `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// SendMessageRequestDTO는 /chat/:sessionId/message 요청 바디이다.
type SendMessageRequestDTO struct {
	Text     string          `json:"text" binding:"required" example:"hello"`
	Metadata models.Metadata `json:"metadata,omitempty"`
}

// SendMessageResponseDTO는 메시지 저장 응답이다.
type SendMessageResponseDTO struct {
	Message ChatMessageDTO `json:"message"`
}

// HistoryResponseDTO는 세션 히스토리 응답이다.
type HistoryResponseDTO struct {
	Messages []ChatMessageDTO `json:"messages"`
}

// AIChatRequestDTO는 /chat/ai 요청 바디이다.
type AIChatRequestDTO struct {
	Message string `json:"message" binding:"required" example:"How can I lower my blood pressure?"`
}

// AIChatResponseDTO는 어시스턴트 응답이다.
type AIChatResponseDTO struct {
	Reply string `json:"reply"`
}

// NewChatMessageDTO converts a stored message into its wire representation.
func NewChatMessageDTO(m models.ChatMessage) ChatMessageDTO {
	out := ChatMessageDTO{
		ID:        m.ID.Hex(),
		SessionID: m.SessionID.Hex(),
		Sender:    SenderDTO{Kind: m.Sender.Kind},
		Text:      m.Text,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
	}
	if m.Sender.ID != nil {
		out.Sender.ID = m.Sender.ID.Hex()
	}
	return out
}

// NewChatMessageDTOs converts a history slice, preserving order.
func NewChatMessageDTOs(items []models.ChatMessage) []ChatMessageDTO {
	out := make([]ChatMessageDTO, 0, len(items))
	for _, m := range items {
		out = append(out, NewChatMessageDTO(m))
	}
	return out
}
