package chat

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/cmd/api/auth"
	"hridsync/cmd/api/services"
	"hridsync/eventbus"
	"hridsync/models"
	"hridsync/repositories"
)

type memorySessionStore struct {
	sessions map[primitive.ObjectID]*models.ChatSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[primitive.ObjectID]*models.ChatSession)}
}

func (s *memorySessionStore) GetOrCreate(ctx context.Context, userID primitive.ObjectID, counterpartID *primitive.ObjectID, withNutritionist bool) (*models.ChatSession, error) {
	for _, existing := range s.sessions {
		if existing.UserID != userID || existing.WithNutritionist != withNutritionist {
			continue
		}
		if existing.CounterpartID == nil && counterpartID == nil {
			return existing, nil
		}
		if existing.CounterpartID != nil && counterpartID != nil && *existing.CounterpartID == *counterpartID {
			return existing, nil
		}
	}
	session := &models.ChatSession{
		ID:               primitive.NewObjectID(),
		UserID:           userID,
		CounterpartID:    counterpartID,
		WithNutritionist: withNutritionist,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	s.sessions[session.ID] = session
	return session, nil
}

func (s *memorySessionStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ChatSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return session, nil
}

func (s *memorySessionStore) Touch(ctx context.Context, id primitive.ObjectID) error { return nil }

type memoryMessageStore struct {
	messages []models.ChatMessage
}

func (s *memoryMessageStore) Insert(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	stored := *m
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	s.messages = append(s.messages, stored)
	return &stored, nil
}

func (s *memoryMessageStore) ListBySession(ctx context.Context, sessionID primitive.ObjectID, limit int) ([]models.ChatMessage, error) {
	var all []models.ChatMessage
	for _, m := range s.messages {
		if m.SessionID == sessionID {
			all = append(all, m)
		}
	}
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

type relayFixture struct {
	chat     *services.ChatService
	auth     *services.AuthService
	jwt      *auth.JWTManager
	hub      *Hub
	bus      *eventbus.MemoryEventBus
	server   *httptest.Server
	sessions *memorySessionStore
	messages *memoryMessageStore
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "relay-test-secret")

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected jwt error: %v", err)
	}

	sessions := newMemorySessionStore()
	messages := &memoryMessageStore{}
	bus := eventbus.NewMemoryEventBus()
	chatSvc := services.NewChatService(sessions, messages, bus)
	authSvc := services.NewAuthService(nil, jwtManager)

	hub := NewHub(chatSvc, 200)
	if err := hub.SubscribeBus(context.Background(), bus, "relay-test"); err != nil {
		t.Fatalf("unexpected subscribe error: %v", err)
	}

	engine := gin.New()
	engine.GET("/ws", ServeWS(hub, authSvc, nil))
	server := httptest.NewServer(engine)

	t.Cleanup(func() {
		server.Close()
		bus.Close()
	})

	return &relayFixture{
		chat:     chatSvc,
		auth:     authSvc,
		jwt:      jwtManager,
		hub:      hub,
		bus:      bus,
		server:   server,
		sessions: sessions,
		messages: messages,
	}
}

func (f *relayFixture) dial(t *testing.T, userID primitive.ObjectID, role string) *websocket.Conn {
	t.Helper()
	token, err := f.jwt.Sign(userID.Hex(), role)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	wsURL := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

type serverEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func sendEvent(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	if err := conn.WriteJSON(map[string]any{"event": event, "data": json.RawMessage(data)}); err != nil {
		t.Fatalf("failed to write event: %v", err)
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) serverEnvelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var envelope serverEnvelope
	if err := conn.ReadJSON(&envelope); err != nil {
		t.Fatalf("failed to read event: %v", err)
	}
	return envelope
}

func expectNoEvent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var envelope serverEnvelope
	if err := conn.ReadJSON(&envelope); err == nil {
		t.Fatalf("expected no event, got %q", envelope.Event)
	}
}

func errorMessage(t *testing.T, envelope serverEnvelope) string {
	t.Helper()
	if envelope.Event != EventError {
		t.Fatalf("expected error event, got %q", envelope.Event)
	}
	var payload ErrorPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	return payload.Message
}

func TestHandshakeRejectsMissingToken(t *testing.T) {
	f := newRelayFixture(t)

	wsURL := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatalf("expected handshake to fail without a token")
	}
	if resp == nil || resp.StatusCode != 401 {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
}

func TestJoinUnknownSessionGetsError(t *testing.T) {
	f := newRelayFixture(t)
	conn := f.dial(t, primitive.NewObjectID(), auth.RoleUser)

	sendEvent(t, conn, EventJoinSession, JoinSessionPayload{SessionID: primitive.NewObjectID().Hex()})

	if msg := errorMessage(t, readEvent(t, conn)); msg != "Session not found" {
		t.Fatalf("expected Session not found, got %q", msg)
	}
}

func TestJoinForeignSessionGetsError(t *testing.T) {
	f := newRelayFixture(t)

	session, err := f.chat.StartSession(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn := f.dial(t, primitive.NewObjectID(), auth.RoleUser)
	sendEvent(t, conn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})

	if msg := errorMessage(t, readEvent(t, conn)); msg != "Not authorized for this session" {
		t.Fatalf("expected Not authorized for this session, got %q", msg)
	}
}

func TestSendBeforeJoinIsRejected(t *testing.T) {
	f := newRelayFixture(t)
	userID := primitive.NewObjectID()

	session, err := f.chat.StartSession(context.Background(), userID, primitive.NewObjectID(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn := f.dial(t, userID, auth.RoleUser)
	sendEvent(t, conn, EventSendMessage, SendMessagePayload{SessionID: session.ID.Hex(), Text: "hi"})

	if msg := errorMessage(t, readEvent(t, conn)); msg != "You must join the session first" {
		t.Fatalf("expected join-first error, got %q", msg)
	}
	if len(f.messages.messages) != 0 {
		t.Fatalf("expected no message persisted for a rejected send, got %d", len(f.messages.messages))
	}
}

func TestJoinReplaysHistoryAndRelaysMessages(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	nutritionistID := primitive.NewObjectID()

	session, err := f.chat.StartSession(ctx, userID, nutritionistID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, text := range []string{"first", "second"} {
		if _, err := f.chat.Append(ctx, session.ID, models.Sender{Kind: models.SenderUser, ID: &userID}, text, nil); err != nil {
			t.Fatalf("unexpected append error: %v", err)
		}
	}

	userConn := f.dial(t, userID, auth.RoleUser)
	sendEvent(t, userConn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})

	history := readEvent(t, userConn)
	if history.Event != EventSessionHistory {
		t.Fatalf("expected session_history first, got %q", history.Event)
	}
	var replayed []map[string]any
	if err := json.Unmarshal(history.Data, &replayed); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(replayed) != 2 {
		t.Fatalf("expected 2 replayed messages, got %d", len(replayed))
	}
	if replayed[0]["text"] != "first" || replayed[1]["text"] != "second" {
		t.Fatalf("expected ascending replay order, got %v", replayed)
	}

	peerConn := f.dial(t, nutritionistID, auth.RoleNutritionist)
	sendEvent(t, peerConn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})
	if evt := readEvent(t, peerConn); evt.Event != EventSessionHistory {
		t.Fatalf("expected session_history for peer, got %q", evt.Event)
	}

	// The already-joined participant hears about the newcomer.
	joined := readEvent(t, userConn)
	if joined.Event != EventParticipantJoined {
		t.Fatalf("expected participant_joined, got %q", joined.Event)
	}
	var joinedPayload ParticipantJoinedPayload
	if err := json.Unmarshal(joined.Data, &joinedPayload); err != nil {
		t.Fatalf("failed to decode participant_joined: %v", err)
	}
	if joinedPayload.UserID != nutritionistID.Hex() {
		t.Fatalf("expected joined user %s, got %s", nutritionistID.Hex(), joinedPayload.UserID)
	}

	// A live send reaches everyone, the sender included, with its
	// metadata intact.
	sendEvent(t, userConn, EventSendMessage, SendMessagePayload{
		SessionID: session.ID.Hex(),
		Text:      "hello there",
		Metadata:  models.Metadata{"source": "mobile", "attempt": 2},
	})
	for _, conn := range []*websocket.Conn{userConn, peerConn} {
		evt := readEvent(t, conn)
		if evt.Event != EventReceiveMessage {
			t.Fatalf("expected receive_message, got %q", evt.Event)
		}
		var msg map[string]any
		if err := json.Unmarshal(evt.Data, &msg); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}
		if msg["text"] != "hello there" {
			t.Fatalf("expected text hello there, got %v", msg["text"])
		}
		if msg["id"] == nil || msg["id"] == "" {
			t.Fatalf("expected server-assigned message id")
		}
		metadata, ok := msg["metadata"].(map[string]any)
		if !ok {
			t.Fatalf("expected metadata on the broadcast copy, got %v", msg["metadata"])
		}
		if metadata["source"] != "mobile" || metadata["attempt"] != float64(2) {
			t.Fatalf("metadata did not survive the round trip: %v", metadata)
		}
	}
}

func TestBusEventsReachLiveRooms(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	session, err := f.chat.StartSession(ctx, userID, primitive.NewObjectID(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn := f.dial(t, userID, auth.RoleUser)
	sendEvent(t, conn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})
	if evt := readEvent(t, conn); evt.Event != EventSessionHistory {
		t.Fatalf("expected session_history, got %q", evt.Event)
	}

	// An append made outside the relay (the REST path) publishes with an
	// empty origin, so the hub delivers it.
	stored, err := f.chat.Append(ctx, session.ID, models.Sender{Kind: models.SenderUser, ID: &userID}, "via rest", nil)
	if err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if err := f.chat.PublishMessage(ctx, stored, ""); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}

	evt := readEvent(t, conn)
	if evt.Event != EventReceiveMessage {
		t.Fatalf("expected receive_message, got %q", evt.Event)
	}
	var msg map[string]any
	if err := json.Unmarshal(evt.Data, &msg); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	if msg["text"] != "via rest" {
		t.Fatalf("expected text via rest, got %v", msg["text"])
	}
}

func TestTypingRelayedToPeersOnly(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	peerID := primitive.NewObjectID()

	session, err := f.chat.StartSession(ctx, userID, peerID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userConn := f.dial(t, userID, auth.RoleUser)
	sendEvent(t, userConn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})
	if evt := readEvent(t, userConn); evt.Event != EventSessionHistory {
		t.Fatalf("expected session_history, got %q", evt.Event)
	}

	peerConn := f.dial(t, peerID, auth.RoleUser)
	sendEvent(t, peerConn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})
	if evt := readEvent(t, peerConn); evt.Event != EventSessionHistory {
		t.Fatalf("expected session_history, got %q", evt.Event)
	}
	if evt := readEvent(t, userConn); evt.Event != EventParticipantJoined {
		t.Fatalf("expected participant_joined, got %q", evt.Event)
	}

	sendEvent(t, userConn, EventTyping, TypingPayload{SessionID: session.ID.Hex(), Typing: true})

	typing := readEvent(t, peerConn)
	if typing.Event != EventTyping {
		t.Fatalf("expected typing, got %q", typing.Event)
	}
	var payload TypingBroadcast
	if err := json.Unmarshal(typing.Data, &payload); err != nil {
		t.Fatalf("failed to decode typing payload: %v", err)
	}
	if payload.UserID != userID.Hex() || !payload.Typing {
		t.Fatalf("unexpected typing payload: %+v", payload)
	}

	// Typing indicators never echo back to the sender.
	expectNoEvent(t, userConn)
}

func TestTypingOutsideRoomIsIgnored(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	peerID := primitive.NewObjectID()

	session, err := f.chat.StartSession(ctx, userID, peerID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peerConn := f.dial(t, peerID, auth.RoleUser)
	sendEvent(t, peerConn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})
	if evt := readEvent(t, peerConn); evt.Event != EventSessionHistory {
		t.Fatalf("expected session_history, got %q", evt.Event)
	}

	// A participant who has not joined must not reach the room.
	outsiderConn := f.dial(t, userID, auth.RoleUser)
	sendEvent(t, outsiderConn, EventTyping, TypingPayload{SessionID: session.ID.Hex(), Typing: true})

	expectNoEvent(t, peerConn)
}

func TestMalformedFramesGetNonFatalErrors(t *testing.T) {
	f := newRelayFixture(t)
	userID := primitive.NewObjectID()

	session, err := f.chat.StartSession(context.Background(), userID, primitive.NewObjectID(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn := f.dial(t, userID, auth.RoleUser)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("failed to write frame: %v", err)
	}
	if msg := errorMessage(t, readEvent(t, conn)); msg != "malformed event" {
		t.Fatalf("expected malformed event error, got %q", msg)
	}

	sendEvent(t, conn, "dance", map[string]any{})
	if msg := errorMessage(t, readEvent(t, conn)); msg != "unknown event" {
		t.Fatalf("expected unknown event error, got %q", msg)
	}

	// The connection survived both bad frames.
	sendEvent(t, conn, EventJoinSession, JoinSessionPayload{SessionID: session.ID.Hex()})
	if evt := readEvent(t, conn); evt.Event != EventSessionHistory {
		t.Fatalf("expected session_history after bad frames, got %q", evt.Event)
	}
}
