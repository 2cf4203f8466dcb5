package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/eventbus"
	"hridsync/models"
	"hridsync/repositories"
)

var (
	ErrSessionNotFound = errors.New("session_not_found")
	ErrNotParticipant  = errors.New("not_a_session_participant")
	ErrEmptyMessage    = errors.New("empty_message")
	ErrInvalidMetadata = errors.New("invalid_metadata")
)

// SessionStore is the session directory surface the chat service needs.
// The Mongo repository satisfies it; tests use an in-memory fake.
type SessionStore interface {
	GetOrCreate(ctx context.Context, userID primitive.ObjectID, counterpartID *primitive.ObjectID, withNutritionist bool) (*models.ChatSession, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ChatSession, error)
	Touch(ctx context.Context, id primitive.ObjectID) error
}

// MessageStore is the message persistence surface the chat service needs.
type MessageStore interface {
	Insert(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error)
	ListBySession(ctx context.Context, sessionID primitive.ObjectID, limit int) ([]models.ChatMessage, error)
}

// ChatMessageEvent crosses the event bus for every stored message so live
// rooms on any API instance can fan it out. Origin carries the hub instance
// id when the append came from that hub's own send path; the hub skips its
// own events because it already broadcast locally.
type ChatMessageEvent struct {
	SessionID string             `json:"session_id"`
	Origin    string             `json:"origin,omitempty"`
	Message   models.ChatMessage `json:"message"`
}

// ChatService owns the session directory and message store orchestration.
// The membership rule it enforces is shared by the realtime join path and
// the REST history/send paths.
type ChatService struct {
	sessions SessionStore
	messages MessageStore
	bus      eventbus.EventBus
}

func NewChatService(sessions SessionStore, messages MessageStore, bus eventbus.EventBus) *ChatService {
	return &ChatService{sessions: sessions, messages: messages, bus: bus}
}

// StartSession returns the one session for (user, counterpart), creating it
// on first use. Creation is a single conditional insert in the store.
func (s *ChatService) StartSession(ctx context.Context, userID, counterpartID primitive.ObjectID, withNutritionist bool) (*models.ChatSession, error) {
	return s.sessions.GetOrCreate(ctx, userID, &counterpartID, withNutritionist)
}

// AssistantSession returns the user's session with the automated assistant,
// creating it lazily. Assistant sessions have no counterpart.
func (s *ChatService) AssistantSession(ctx context.Context, userID primitive.ObjectID) (*models.ChatSession, error) {
	return s.sessions.GetOrCreate(ctx, userID, nil, false)
}

// Authorize loads a session and verifies the requester is a participant.
func (s *ChatService) Authorize(ctx context.Context, sessionID, userID primitive.ObjectID) (*models.ChatSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !session.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return session, nil
}

// History returns the session's messages ascending by creation time,
// truncated to the most recent limit, after the membership check.
func (s *ChatService) History(ctx context.Context, sessionID, requesterID primitive.ObjectID, limit int) ([]models.ChatMessage, error) {
	if _, err := s.Authorize(ctx, sessionID, requesterID); err != nil {
		return nil, err
	}
	return s.messages.ListBySession(ctx, sessionID, limit)
}

// Append validates and durably writes one message, then returns the stored
// copy with its server-assigned id and timestamp. The caller is trusted to
// have authorized the sender; Append still verifies the session exists.
func (s *ChatService) Append(ctx context.Context, sessionID primitive.ObjectID, sender models.Sender, text string, metadata models.Metadata) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if metadata != nil {
		if err := metadata.Validate(); err != nil {
			return nil, ErrInvalidMetadata
		}
	}
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	stored, err := s.messages.Insert(ctx, &models.ChatMessage{
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		Metadata:  metadata,
	})
	if err != nil {
		return nil, err
	}
	// Best-effort recency bump; the message itself is already durable.
	_ = s.sessions.Touch(ctx, sessionID)
	return stored, nil
}

// PublishMessage puts a stored message on the chat event bus. Origin is the
// hub instance id for relay-originated sends, empty for REST sends.
func (s *ChatService) PublishMessage(ctx context.Context, m *models.ChatMessage, origin string) error {
	if s.bus == nil {
		return nil
	}
	evt, err := eventbus.NewJSONEvent("", ChatMessageEvent{
		SessionID: m.SessionID.Hex(),
		Origin:    origin,
		Message:   *m,
	})
	if err != nil {
		return err
	}
	return s.bus.Publish(ctx, eventbus.TopicChatEvents.Base(), evt)
}
