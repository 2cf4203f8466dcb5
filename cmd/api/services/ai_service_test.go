package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/models"
)

func TestAIChatStoresBothSidesOfTheExchange(t *testing.T) {
	chatSvc, _, messages := newTestChatService()
	llm := &stubLLM{reply: "drink more water"}
	svc := NewAIService(chatSvc, llm)

	ctx := context.Background()
	userID := primitive.NewObjectID()

	reply, err := svc.Chat(ctx, userID, "am I drinking enough water?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "drink more water" {
		t.Fatalf("expected llm reply, got %q", reply)
	}

	if len(messages.messages) != 2 {
		t.Fatalf("expected 2 stored messages, got %d", len(messages.messages))
	}
	userMsg, assistantMsg := messages.messages[0], messages.messages[1]
	if userMsg.Sender.Kind != models.SenderUser || userMsg.Text != "am I drinking enough water?" {
		t.Fatalf("unexpected user message: %+v", userMsg)
	}
	if assistantMsg.Sender.Kind != models.SenderAssistant || assistantMsg.Sender.ID != nil {
		t.Fatalf("expected id-less assistant sender, got %+v", assistantMsg.Sender)
	}
	if assistantMsg.Text != "drink more water" {
		t.Fatalf("unexpected assistant message text: %q", assistantMsg.Text)
	}
	if userMsg.SessionID != assistantMsg.SessionID {
		t.Fatalf("expected both messages in the same session")
	}
}

func TestAIChatReusesTheAssistantSession(t *testing.T) {
	chatSvc, _, messages := newTestChatService()
	svc := NewAIService(chatSvc, &stubLLM{reply: "ok"})

	ctx := context.Background()
	userID := primitive.NewObjectID()

	if _, err := svc.Chat(ctx, userID, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Chat(ctx, userID, "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessionID := messages.messages[0].SessionID
	for i, m := range messages.messages {
		if m.SessionID != sessionID {
			t.Fatalf("message %d landed in a different session", i)
		}
	}
}

func TestAIChatLLMFailureLeavesUserMessageStored(t *testing.T) {
	chatSvc, _, messages := newTestChatService()
	svc := NewAIService(chatSvc, &stubLLM{err: errors.New("model overloaded")})

	ctx := context.Background()
	userID := primitive.NewObjectID()

	if _, err := svc.Chat(ctx, userID, "hello"); err == nil {
		t.Fatalf("expected llm error to surface")
	}
	// The user's message is durable even when the reply never came.
	if len(messages.messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(messages.messages))
	}
	if messages.messages[0].Sender.Kind != models.SenderUser {
		t.Fatalf("expected the stored message to be the user's")
	}
}
