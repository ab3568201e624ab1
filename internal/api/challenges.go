package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/challenge_service"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

const defaultBatchCount = 5

// HandlerGetChallenges generates a batch of challenges. The result may
// be shorter than requested, only a fully failed batch is a 500.
func (a *Api) HandlerGetChallenges(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	count := defaultBatchCount
	if c := query.Get("count"); c != "" {
		parsed, err := strconv.Atoi(c)
		if err != nil || parsed < 1 {
			handlerError(fmt.Errorf(
				"%w, count must be a positive integer",
				prep_errors.ErrInvalidRequest,
			), w)
			return
		}
		count = parsed
	}

	var difficulties []challenge_service.Difficulty
	if d := query.Get("difficulty"); d != "" {
		parsed, err := challenge_service.ParseDifficulty(d)
		if err != nil {
			handlerError(err, w)
			return
		}
		difficulties = []challenge_service.Difficulty{parsed}
	}

	result, err := a.ChallengeServiceConfig.GenerateBatch(
		r.Context(),
		llm.Config{},
		count,
		difficulties,
		query.Get("context"),
		query.Get("language"),
	)
	if err != nil {
		handlerError(err, w)
		return
	}
	if len(result.Challenges) == 0 {
		respondWithError(w, http.StatusInternalServerError, "Failed to generate challenges")
		return
	}

	response := struct {
		Challenges []challenge_service.Challenge `json:"challenges"`
	}{
		Challenges: make([]challenge_service.Challenge, 0, len(result.Challenges)),
	}
	for _, challenge := range result.Challenges {
		response.Challenges = append(response.Challenges, challenge.WithoutHints())
	}

	marshalAndRespond(w, http.StatusOK, response)
}
