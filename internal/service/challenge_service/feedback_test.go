package challenge_service

import (
	"context"
	"errors"
	"testing"

	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

func TestGetFeedback(t *testing.T) {
	challenge := Challenge{
		ID:          "c1",
		Title:       "Two Sum",
		Description: "desc",
	}
	client := &fakeClient{responses: []string{"## Correctness\nlooks right"}}
	svc := seededService(t, client, challenge)

	feedback, err := svc.GetFeedback(context.Background(), llm.Config{}, "c1", "def solve(): pass", "python")
	if err != nil {
		t.Fatalf("GetFeedback failed: %v", err)
	}
	if feedback != "## Correctness\nlooks right" {
		t.Errorf("feedback = %q, want the model reply", feedback)
	}
}

func TestGetFeedbackUnknownChallenge(t *testing.T) {
	svc := newTestService(t, &fakeClient{responses: []string{"feedback"}})

	_, err := svc.GetFeedback(context.Background(), llm.Config{}, "missing", "code", "")
	if !errors.Is(err, prep_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetFeedbackUpstreamFailureKeepsDetail(t *testing.T) {
	upstream := errors.New("model unavailable")
	challenge := Challenge{ID: "c1", Title: "Two Sum", Description: "desc"}
	client := &fakeClient{responses: []string{""}, errs: []error{upstream}}
	svc := seededService(t, client, challenge)

	_, err := svc.GetFeedback(context.Background(), llm.Config{}, "c1", "code", "")
	if !errors.Is(err, prep_errors.ErrFeedbackGeneration) {
		t.Errorf("expected ErrFeedbackGeneration, got %v", err)
	}
	if !errors.Is(err, upstream) {
		t.Errorf("feedback error must keep the upstream detail, got %v", err)
	}
}
