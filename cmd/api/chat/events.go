package chat

import (
	"encoding/json"

	"hridsync/cmd/api/dto"
	"hridsync/models"
)

// Client-to-server events.
const (
	EventJoinSession = "join_session"
	EventSendMessage = "send_message"
	EventTyping      = "typing"
)

// Server-to-client events.
const (
	EventSessionHistory    = "session_history"
	EventReceiveMessage    = "receive_message"
	EventParticipantJoined = "participant_joined"
	EventError             = "error"
)

// ClientEvent is the envelope for every inbound frame:
// {"event": "...", "data": {...}}.
type ClientEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ServerEvent is the envelope for every outbound frame.
type ServerEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type JoinSessionPayload struct {
	SessionID string `json:"session_id"`
}

type SendMessagePayload struct {
	SessionID string          `json:"session_id"`
	Text      string          `json:"text"`
	Metadata  models.Metadata `json:"metadata,omitempty"`
}

type TypingPayload struct {
	SessionID string `json:"session_id"`
	Typing    bool   `json:"typing"`
}

type TypingBroadcast struct {
	UserID string `json:"user_id"`
	Typing bool   `json:"typing"`
}

type ParticipantJoinedPayload struct {
	UserID string `json:"user_id"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func errorEvent(msg string) ServerEvent {
	return ServerEvent{Event: EventError, Data: ErrorPayload{Message: msg}}
}

func messageEvent(m models.ChatMessage) ServerEvent {
	return ServerEvent{Event: EventReceiveMessage, Data: dto.NewChatMessageDTO(m)}
}
