package assistant

import (
	"context"
	"log/slog"
)

// NoopClient is an assistant client for development and testing. It logs
// turns and replies with a canned acknowledgement instead of calling the
// hosted model.
type NoopClient struct{}

// NewNoopClient creates a new NoopClient.
func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

// StartSession returns a session that echoes canned replies.
func (c *NoopClient) StartSession(_ context.Context, lang string) (Session, error) {
	slog.Info("noop_assistant_session", "lang", lang)
	return &noopSession{lang: lang}, nil
}

type noopSession struct {
	lang string
}

// Send logs the turn and returns a canned reply.
func (s *noopSession) Send(_ context.Context, text string) (string, error) {
	slog.Info("noop_assistant_turn", "lang", s.lang, "chars", len(text))
	return "(assistant offline) Thanks for your message!", nil
}
