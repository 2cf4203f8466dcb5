package services

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"google.golang.org/genai"

	"hridsync/config"
	"hridsync/models"
)

// LLMClient abstracts the language-model collaborator so services and
// tests do not depend on the concrete client.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const assistantSystemInstruction = `
You are a heart-health assistant inside a risk-screening application. Answer
the user's question with practical, cautious advice about cardiovascular
health, diet and exercise. Keep answers under 200 words. Always remind the
user to consult a medical professional for diagnosis or treatment decisions.
`

// GeminiClient is the production LLMClient.
type GeminiClient struct {
	model  string
	apiKey string
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		model:  config.GetConfig().GeminiModel,
		apiKey: os.Getenv("GEMINI_API_KEY"),
	}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistantSystemInstruction}}},
		},
	)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// AIService drives the assistant chat: one lazily created session per user,
// user message stored before the LLM call, assistant reply stored after.
type AIService struct {
	chat *ChatService
	llm  LLMClient
}

func NewAIService(chat *ChatService, llm LLMClient) *AIService {
	return &AIService{chat: chat, llm: llm}
}

// Chat appends the user message to the assistant session, asks the LLM for
// a reply and appends that too. Both writes land in the message store, so a
// page reload replays the full conversation via the normal history path.
func (s *AIService) Chat(ctx context.Context, userID primitive.ObjectID, message string) (string, error) {
	session, err := s.chat.AssistantSession(ctx, userID)
	if err != nil {
		return "", err
	}

	if _, err := s.chat.Append(ctx, session.ID, models.Sender{Kind: models.SenderUser, ID: &userID}, message, nil); err != nil {
		return "", err
	}

	reply, err := s.llm.Generate(ctx, message)
	if err != nil {
		return "", err
	}

	if _, err := s.chat.Append(ctx, session.ID, models.Sender{Kind: models.SenderAssistant}, reply, nil); err != nil {
		return "", err
	}
	return reply, nil
}
