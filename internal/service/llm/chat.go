package llm

import (
	"context"
	"sync"
)

// ChatSession holds one multi turn conversation with a model. It is a
// general purpose capability, the challenge, hint and feedback paths do
// not use it.
type ChatSession struct {
	client Client

	mu      sync.Mutex
	history []Message
}

// NewChatSession starts a fresh conversation, optionally seeded with
// prior turns.
func NewChatSession(client Client, history []Message) *ChatSession {
	return &ChatSession{
		client:  client,
		history: append([]Message(nil), history...),
	}
}

// Reset drops the conversation so far.
func (s *ChatSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Send appends the message as a user turn, asks the model for the next
// turn and records the reply. A failed call leaves the history unchanged.
func (s *ChatSession) Send(ctx context.Context, message string) (string, error) {
	s.mu.Lock()
	turns := append(append([]Message(nil), s.history...), Message{
		Role:    RoleUser,
		Content: message,
	})
	s.mu.Unlock()

	reply, err := s.client.Generate(ctx, Request{Messages: turns})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.history = append(turns, Message{Role: RoleAssistant, Content: reply})
	s.mu.Unlock()

	return reply, nil
}

// History returns a copy of the conversation so far.
func (s *ChatSession) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.history...)
}
