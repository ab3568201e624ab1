package challenge_service

import (
	"context"
	"fmt"

	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

// GetFeedback looks the challenge up by id and asks the model to review
// the submitted solution. Unlike the generation path, failures here keep
// their detail, the caller surfaces it to the user.
func (c *ChallengeService) GetFeedback(
	ctx context.Context,
	cfg llm.Config,
	challengeID string,
	code string,
	language string,
) (string, error) {
	challenge, ok := c.Store.Get(challengeID)
	if !ok {
		return "", fmt.Errorf(
			"%w, no challenge exist with the given id",
			prep_errors.ErrNotFound,
		)
	}

	if language == "" {
		language = DefaultLanguage
	}

	client, err := c.clientFor(cfg)
	if err != nil {
		return "", err
	}

	prompt := buildFeedbackPrompt(challenge, code, language)
	feedback, err := llm.GenerateText(ctx, client, prompt)
	if err != nil {
		return "", fmt.Errorf(
			"%w, %w",
			prep_errors.ErrFeedbackGeneration,
			err,
		)
	}

	return feedback, nil
}
