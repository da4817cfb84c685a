// Package assistant relays visitor chat to a hosted language model,
// priming each conversation with a context prompt built from the site
// owner's fixed profile dataset.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"rilliex/internal/domain/profile"
)

// Fallback strings. The chat widget never surfaces a raw error; any
// transport or API failure resolves to FallbackTransportError and an
// empty model reply resolves to FallbackEmptyReply.
const (
	FallbackTransportError = "Something went wrong connecting to the AI coach. Please try again."
	FallbackEmptyReply     = "I'm sorry, I couldn't generate a response right now."
)

// Session is one stateful conversation with the model.
type Session interface {
	// Send forwards one user turn and returns the assistant's reply.
	Send(ctx context.Context, text string) (string, error)
}

// Client opens assistant sessions. Implementations: GeminiClient for the
// hosted provider, NoopClient for development and tests.
type Client interface {
	StartSession(ctx context.Context, lang string) (Session, error)
}

// BuildContext renders the system instruction for a conversation in the
// given language. It reads the constant profile dataset, not live content
// edits, so the assistant describes the original seed schedule and
// achievements even after the owner edits them. Known staleness
// limitation, kept to match the site's observed behaviour.
func BuildContext(lang string) string {
	bio := profile.Bio.In(lang)
	langInstruction := "Respond in English."
	if lang == profile.LangZH {
		langInstruction = "Respond in Chinese (Simplified)."
	}

	var achievements strings.Builder
	for _, a := range profile.Achievements {
		fmt.Fprintf(&achievements, "- %s: %s\n", a.Year, a.Title(lang))
	}

	var socials strings.Builder
	for _, s := range profile.DefaultSocialLinks() {
		fmt.Fprintf(&socials, "- %s (%s): %s followers. URL: %s\n", s.Platform, s.Handle, s.Followers, s.URL)
	}

	var schedule strings.Builder
	for _, e := range profile.DefaultSchedule() {
		fmt.Fprintf(&schedule, "- %s at %s: %s (%s)\n", e.Day, e.Time, e.Title, e.Type)
	}

	coaching := fmt.Sprintf("Location: %s\nTarget Students: %s\nFormat: %s",
		profile.Coaching.Locations.In(lang),
		strings.Join(profile.Coaching.Targets.In(lang), ", "),
		strings.Join(profile.Coaching.Formats.In(lang), ", "),
	)

	return fmt.Sprintf(`You are an AI Assistant for the personal website of %[1]s.
Your persona is professional, knowledgeable about tennis, and friendly.
%[2]s

Context about %[1]s:
%[3]s

Social Media Stats:
%[4]s
Coaching Info:
%[5]s

Key Achievements:
%[6]s
Typical Weekly Schedule:
%[7]s
Your goal is to answer visitor questions about %[1]s, their tennis schedule, coaching availability, career achievements, or general tennis advice.
Keep answers concise (under 100 words usually) and engaging.
If asked about coaching, emphasize the coaching locations and encourage them to contact via email.
If asked about videos or social media, direct them to the appropriate platform from the list above.`,
		profile.OwnerName,
		langInstruction,
		bio,
		socials.String(),
		coaching,
		achievements.String(),
		schedule.String(),
	)
}

// Relay forwards one user turn, mapping every failure to a friendly
// in-chat message. The returned string is always safe to display.
// POST: never returns an error; the conversation can continue
func Relay(ctx context.Context, session Session, text string) string {
	reply, err := session.Send(ctx, text)
	if err != nil {
		return FallbackTransportError
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackEmptyReply
	}
	return reply
}
