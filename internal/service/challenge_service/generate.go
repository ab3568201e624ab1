package challenge_service

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

// BatchFailure records one batch slot whose generation failed.
type BatchFailure struct {
	Slot       int        `json:"slot"`
	Difficulty Difficulty `json:"difficulty"`
	Err        error      `json:"-"`
}

// BatchResult carries the generated challenges along with per slot
// failures. A batch is allowed to come back shorter than requested.
type BatchResult struct {
	Challenges []Challenge
	Failures   []BatchFailure
}

// GenerateChallenge produces one challenge and records it in history so
// hint and feedback requests can find it later.
func (c *ChallengeService) GenerateChallenge(
	ctx context.Context,
	cfg llm.Config,
	difficulty Difficulty,
	topic string,
	language string,
) (Challenge, error) {
	client, err := c.clientFor(cfg)
	if err != nil {
		return Challenge{}, err
	}

	challenge, err := c.generateOne(ctx, client, difficulty, topic, language)
	if err != nil {
		return Challenge{}, err
	}

	c.Store.PutHistory(challenge)
	log.WithFields(log.Fields{
		"challenge_id": challenge.ID,
		"title":        challenge.Title,
		"difficulty":   challenge.Difficulty,
	}).Info("generated challenge")

	return challenge, nil
}

// GenerateBatch produces count challenges, assigning difficulties from
// the pool round robin (slot i gets difficulties[i mod len]). Failed
// slots are reported in the result instead of being dropped silently.
// Successful slots land in the batch cache.
func (c *ChallengeService) GenerateBatch(
	ctx context.Context,
	cfg llm.Config,
	count int,
	difficulties []Difficulty,
	topic string,
	language string,
) (BatchResult, error) {
	client, err := c.clientFor(cfg)
	if err != nil {
		return BatchResult{}, err
	}

	if len(difficulties) == 0 {
		difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	}

	var result BatchResult
	for i := 0; i < count; i++ {
		difficulty := difficulties[i%len(difficulties)]
		challenge, genErr := c.generateOne(ctx, client, difficulty, topic, language)
		if genErr != nil {
			log.WithFields(log.Fields{
				"slot":       i,
				"difficulty": difficulty,
			}).Warnf("batch slot failed, %v", genErr)
			result.Failures = append(result.Failures, BatchFailure{
				Slot:       i,
				Difficulty: difficulty,
				Err:        genErr,
			})
			continue
		}
		c.Store.PutCache(challenge)
		result.Challenges = append(result.Challenges, challenge)
	}

	return result, nil
}

// generateOne runs prompt -> model -> normalize without touching the
// store. On success the challenge is added to the anti repetition list.
func (c *ChallengeService) generateOne(
	ctx context.Context,
	client llm.Client,
	difficulty Difficulty,
	topic string,
	language string,
) (Challenge, error) {
	if language == "" {
		language = DefaultLanguage
	}

	prompt := buildChallengePrompt(difficulty, topic, language, c.previous.snapshot())

	raw, err := llm.GenerateText(ctx, client, prompt)
	if err != nil {
		return Challenge{}, err
	}

	challenge, err := parseChallenge(raw)
	if err != nil {
		return Challenge{}, err
	}

	c.previous.add(challenge.Title, challenge.Description)
	return challenge, nil
}
