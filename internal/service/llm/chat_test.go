package llm

import (
	"context"
	"errors"
	"testing"
)

// scriptedClient records requests and plays back canned replies.
type scriptedClient struct {
	replies  []string
	err      error
	requests []Request
}

func (s *scriptedClient) Name() string { return "scripted" }

func (s *scriptedClient) Generate(ctx context.Context, request Request) (string, error) {
	s.requests = append(s.requests, request)
	if s.err != nil {
		return "", s.err
	}
	reply := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return reply, nil
}

func TestChatSessionAccumulatesTurns(t *testing.T) {
	client := &scriptedClient{replies: []string{"hello there", "fine, thanks"}}
	session := NewChatSession(client, nil)

	reply, err := session.Send(context.Background(), "hi")
	if err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	if reply != "hello there" {
		t.Errorf("first reply = %q", reply)
	}

	if _, err := session.Send(context.Background(), "how are you?"); err != nil {
		t.Fatalf("second send failed: %v", err)
	}

	history := session.History()
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	if history[0].Role != RoleUser || history[1].Role != RoleAssistant {
		t.Errorf("unexpected roles at the start of history: %+v", history[:2])
	}

	// the second request must carry the full conversation so far
	secondRequest := client.requests[1]
	if len(secondRequest.Messages) != 3 {
		t.Errorf("second request carried %d messages, want 3", len(secondRequest.Messages))
	}
}

func TestChatSessionFailedSendLeavesHistory(t *testing.T) {
	client := &scriptedClient{err: errors.New("model unavailable")}
	session := NewChatSession(client, nil)

	if _, err := session.Send(context.Background(), "hi"); err == nil {
		t.Fatal("expected an error from the scripted client")
	}
	if len(session.History()) != 0 {
		t.Errorf("failed send must not extend history, got %d turns", len(session.History()))
	}
}

func TestChatSessionReset(t *testing.T) {
	client := &scriptedClient{replies: []string{"hello"}}
	session := NewChatSession(client, []Message{{Role: RoleUser, Content: "earlier"}})

	session.Reset()
	if len(session.History()) != 0 {
		t.Errorf("reset must drop the conversation, got %d turns", len(session.History()))
	}
}
