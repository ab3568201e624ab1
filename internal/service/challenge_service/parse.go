package challenge_service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

// extractJSONPayload strips markdown fences from a raw model reply.
// Preference order: first ```json fenced block, first generic ``` block,
// whole text.
func extractJSONPayload(text string) string {
	if strings.Contains(text, "```json") {
		after := strings.SplitN(text, "```json", 2)[1]
		return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
	}
	if strings.Contains(text, "```") {
		parts := strings.SplitN(text, "```", 3)
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(text)
}

// parseChallenge turns a raw model reply into a Challenge. Model output
// is untrusted input, so the parsed object is schema validated before a
// Challenge is constructed. A reply without an id gets a generated one.
func parseChallenge(raw string) (Challenge, error) {
	candidate := extractJSONPayload(raw)

	var challenge Challenge
	if err := json.Unmarshal([]byte(candidate), &challenge); err != nil {
		log.WithField("raw_response", raw).Errorf("error parsing challenge JSON, %v", err)
		return Challenge{}, fmt.Errorf(
			"%w, %v",
			prep_errors.ErrGenerationParse,
			err,
		)
	}

	if err := service.ValidateInput(challenge); err != nil {
		log.WithField("raw_response", raw).Errorf("generated challenge failed validation, %v", err)
		return Challenge{}, fmt.Errorf(
			"%w, %v",
			prep_errors.ErrGenerationParse,
			err,
		)
	}

	if challenge.ID == "" {
		challenge.ID = uuid.NewString()
	}

	return challenge, nil
}
