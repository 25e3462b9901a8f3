package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"knowli_cli/api"
)

// FallbackReply is appended in place of an assistant reply when the chat
// request fails; errors never escape the session boundary.
const FallbackReply = "Sorry, there was an error processing your request."

// DefaultGreeting is the assistant message a greeting-mode conversation
// starts with.
const DefaultGreeting = "Hello! 👋 I'm your personal beauty advisor. " +
	"Tell me about your beauty needs or concerns and I'll recommend the right product for you."

// Completer performs one chat exchange with the advisor API.
type Completer interface {
	Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
}

// Session owns the conversation and the in-flight guard for one chat
// session. All state lives on the session; there are no package globals.
type Session struct {
	mu       sync.Mutex
	conv     *Conversation
	client   Completer
	inFlight bool
}

// NewSession creates a session over the given completer. The initial
// messages define what Reset restores.
func NewSession(client Completer, initial []api.Message) *Session {
	return &Session{
		conv:   NewConversation(initial),
		client: client,
	}
}

// Submit performs one full submit cycle: it appends the user message,
// issues exactly one chat request carrying the conversation so far, and
// appends the assistant reply, or FallbackReply when the request fails.
// It returns false without side effects when text is blank or another
// request is in flight. The in-flight flag is cleared on every exit path.
func (s *Session) Submit(ctx context.Context, text string) bool {
	s.mu.Lock()
	if s.inFlight || strings.TrimSpace(text) == "" {
		s.mu.Unlock()
		return false
	}
	s.conv.Append(api.Message{Role: api.RoleUser, Content: text})
	s.inFlight = true
	req := api.ChatRequest{Messages: s.conv.Messages()}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	replyText := FallbackReply
	resp, err := s.client.Chat(ctx, req)
	switch {
	case err != nil:
		slog.Warn("Chat request failed, substituting fallback reply", "error", err)
	case resp == nil:
		slog.Warn("Chat request returned no response, substituting fallback reply")
	default:
		replyText = resp.Text
	}

	s.mu.Lock()
	s.conv.Append(api.Message{Role: api.RoleAssistant, Content: replyText})
	s.mu.Unlock()
	return true
}

// InFlight reports whether a chat request is outstanding.
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Messages returns a copy of the conversation in order.
func (s *Session) Messages() []api.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.Messages()
}

// Len returns the number of messages in the conversation.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.Len()
}

// Reset restores the conversation to its configured initial state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv.Reset()
	slog.Info("Conversation reset", "messages", s.conv.Len())
}
