package chat

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/cmd/api/dto"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
	"hridsync/eventbus"
	"hridsync/models"
)

// Hub owns the ephemeral room state of the realtime relay: which connection
// is currently in which session room. All durable state lives behind the
// chat service. Errors on any event are non-fatal; the connection stays up.
type Hub struct {
	id          string
	chat        *services.ChatService
	replayLimit int

	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func NewHub(chatSvc *services.ChatService, replayLimit int) *Hub {
	if replayLimit <= 0 {
		replayLimit = 200
	}
	return &Hub{
		id:          uuid.NewString(),
		chat:        chatSvc,
		replayLimit: replayLimit,
		rooms:       make(map[string]map[*client]struct{}),
	}
}

// SubscribeBus attaches the hub to the chat event bus so appends made
// outside this hub (REST path, other API instances) reach live rooms.
// Blocks for bus implementations that poll; run it in its own goroutine.
func (h *Hub) SubscribeBus(ctx context.Context, bus eventbus.EventBus, groupID string) error {
	return eventbus.SubscribeJSON(ctx, bus, groupID, eventbus.TopicChatEvents,
		func(ctx context.Context, evt services.ChatMessageEvent, _ eventbus.Event) error {
			if evt.Origin == h.id {
				// already broadcast locally by handleSend
				return nil
			}
			h.broadcast(evt.SessionID, messageEvent(evt.Message), nil)
			return nil
		})
}

func (h *Hub) addToRoom(room string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
}

func (h *Hub) inRoom(room string, c *client) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[room][c]
	return ok
}

// removeClient drops a connection from every room. Peers get no
// participant-left notification.
func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// broadcast fans an event out to every room member except skip (nil means
// everyone, including the original sender).
func (h *Hub) broadcast(room string, evt ServerEvent, skip *client) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.rooms[room]))
	for member := range h.rooms[room] {
		if member != skip {
			targets = append(targets, member)
		}
	}
	h.mu.RUnlock()

	for _, member := range targets {
		member.enqueue(evt)
	}
}

// handleJoin admits an authorized participant into the session room,
// replays recent history to the joiner only and notifies the peers.
func (h *Hub) handleJoin(c *client, p JoinSessionPayload) {
	sessionID, err := primitive.ObjectIDFromHex(p.SessionID)
	if err != nil {
		c.enqueue(errorEvent("Session not found"))
		return
	}

	ctx := context.Background()
	if _, err := h.chat.Authorize(ctx, sessionID, c.userID); err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			c.enqueue(errorEvent("Session not found"))
		case errors.Is(err, services.ErrNotParticipant):
			c.enqueue(errorEvent("Not authorized for this session"))
		default:
			logger.ErrorWithFields("join_session failed", logger.Fields{
				"session_id": p.SessionID,
				"error":      err.Error(),
			})
			c.enqueue(errorEvent("Failed to join session"))
		}
		return
	}

	h.addToRoom(p.SessionID, c)

	history, err := h.chat.History(ctx, sessionID, c.userID, h.replayLimit)
	if err != nil {
		logger.ErrorWithFields("history replay failed", logger.Fields{
			"session_id": p.SessionID,
			"error":      err.Error(),
		})
		c.enqueue(errorEvent("Failed to load history"))
		return
	}
	c.enqueue(ServerEvent{Event: EventSessionHistory, Data: dto.NewChatMessageDTOs(history)})

	h.broadcast(p.SessionID, ServerEvent{
		Event: EventParticipantJoined,
		Data:  ParticipantJoinedPayload{UserID: c.userID.Hex()},
	}, c)
}

// handleSend persists the message and fans the stored copy out to the whole
// room, sender included, so every UI reconciles on the server-confirmed
// copy. The durable write always precedes the broadcast.
func (h *Hub) handleSend(c *client, p SendMessagePayload) {
	if !h.inRoom(p.SessionID, c) {
		c.enqueue(errorEvent("You must join the session first"))
		return
	}

	sessionID, err := primitive.ObjectIDFromHex(p.SessionID)
	if err != nil {
		c.enqueue(errorEvent("Session not found"))
		return
	}

	ctx := context.Background()
	stored, err := h.chat.Append(ctx, sessionID, c.sender(), p.Text, p.Metadata)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			c.enqueue(errorEvent("Message text is required"))
		case errors.Is(err, services.ErrInvalidMetadata):
			c.enqueue(errorEvent("Invalid message metadata"))
		case errors.Is(err, services.ErrSessionNotFound):
			c.enqueue(errorEvent("Session not found"))
		default:
			logger.ErrorWithFields("send_message failed", logger.Fields{
				"session_id": p.SessionID,
				"error":      err.Error(),
			})
			c.enqueue(errorEvent("Message send failed"))
		}
		return
	}

	h.broadcast(p.SessionID, messageEvent(*stored), nil)

	// Fan-out to rooms on other instances. Best effort only; the message
	// is already durable.
	if err := h.chat.PublishMessage(ctx, stored, h.id); err != nil {
		logger.WarnWithFields("chat event publish failed", logger.Fields{
			"session_id": p.SessionID,
			"message_id": stored.ID.Hex(),
			"error":      err.Error(),
		})
	}
}

// handleTyping relays a typing indicator to the other room members. Never
// persisted. Membership is required; the source relayed these unchecked,
// which was an authorization gap.
func (h *Hub) handleTyping(c *client, p TypingPayload) {
	if !h.inRoom(p.SessionID, c) {
		return
	}
	h.broadcast(p.SessionID, ServerEvent{
		Event: EventTyping,
		Data:  TypingBroadcast{UserID: c.userID.Hex(), Typing: p.Typing},
	}, c)
}

// sender maps the connection identity to the tagged sender designation.
func (c *client) sender() models.Sender {
	kind := models.SenderUser
	if c.role == "nutritionist" {
		kind = models.SenderNutritionist
	}
	id := c.userID
	return models.Sender{Kind: kind, ID: &id}
}
