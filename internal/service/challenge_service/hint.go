package challenge_service

import (
	"context"
	"fmt"

	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

type HintResult struct {
	Hint       string `json:"hint"`
	IsLastHint bool   `json:"isLastHint"`
}

// GetHint looks the challenge up by id and asks the model for one hint.
// IsLastHint reports whether hintIndex has reached the challenge's last
// scripted hint.
func (c *ChallengeService) GetHint(
	ctx context.Context,
	cfg llm.Config,
	challengeID string,
	hintIndex int,
	currentCode string,
) (HintResult, error) {
	challenge, ok := c.Store.Get(challengeID)
	if !ok {
		return HintResult{}, fmt.Errorf(
			"%w, no challenge exist with the given id",
			prep_errors.ErrNotFound,
		)
	}

	client, err := c.clientFor(cfg)
	if err != nil {
		return HintResult{}, err
	}

	prompt := buildHintPrompt(challenge, currentCode)
	hint, err := llm.GenerateText(ctx, client, prompt)
	if err != nil {
		return HintResult{}, err
	}

	return HintResult{
		Hint:       hint,
		IsLastHint: hintIndex >= len(challenge.Hints)-1,
	}, nil
}
