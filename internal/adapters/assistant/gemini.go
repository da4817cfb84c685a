package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Model and sampling settings for the hosted assistant.
const (
	geminiModel       = "gemini-2.5-flash"
	geminiTemperature = 0.7
)

// GeminiClient opens chat sessions against the Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a client authenticated with the given API key.
// PRE: apiKey is a valid Gemini API key
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// StartSession opens a stateful conversation primed with the site context
// for the given language.
func (c *GeminiClient) StartSession(ctx context.Context, lang string) (Session, error) {
	temperature := float32(geminiTemperature)
	chat, err := c.client.Chats.Create(ctx, geminiModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(BuildContext(lang), genai.RoleUser),
		Temperature:       &temperature,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("creating chat session: %w", err)
	}
	return &geminiSession{chat: chat}, nil
}

type geminiSession struct {
	chat *genai.Chat
}

// Send forwards one user turn to the model.
func (s *geminiSession) Send(ctx context.Context, text string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		slog.Error("gemini_send_failed", "error", err.Error())
		return "", fmt.Errorf("gemini send failed: %w", err)
	}
	return resp.Text(), nil
}
