package challenge_service

import (
	"fmt"

	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultLanguage is assumed when a request does not name one.
const DefaultLanguage = "javascript"

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf(
			"%w, difficulty must be one of easy, medium, hard",
			prep_errors.ErrInvalidRequest,
		)
	}
}

type ChallengeExample struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Challenge is created once by a generation call and immutable after.
type Challenge struct {
	ID          string             `json:"id"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description" validate:"required"`
	Examples    []ChallengeExample `json:"examples"`
	Difficulty  Difficulty         `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Hints       []string           `json:"hints,omitempty"`
}

// WithoutHints is the shape sent on initial challenge fetches. Hints stay
// server side until asked for.
func (c Challenge) WithoutHints() Challenge {
	c.Hints = nil
	return c
}

type PreviousChallengeSummary struct {
	Title              string `json:"title"`
	DescriptionSnippet string `json:"description_snippet"`
}

type ChallengeService struct {
	Store   *ChallengeStore
	Clients llm.ClientFactory

	previous previousChallenges
}

func (c *ChallengeService) clientFor(cfg llm.Config) (llm.Client, error) {
	factory := c.Clients
	if factory == nil {
		factory = llm.NewClient
	}
	return factory(cfg)
}
