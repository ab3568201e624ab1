package api

import (
	"net/http"

	"github.com/prepgrid/prepgrid/middleware"
	"github.com/prepgrid/prepgrid/internal/service/challenge_service"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

// HandlerGetChallenge serves a specific challenge by id from history, or
// generates a fresh one. A provider query parameter requires a session
// user owning a key for that provider.
func (a *Api) HandlerGetChallenge(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// lookup by id never generates
	if id := query.Get("id"); id != "" {
		challenge, ok := a.ChallengeServiceConfig.Store.Get(id)
		if !ok {
			respondWithError(w, http.StatusNotFound, "Challenge not found")
			return
		}
		marshalAndRespond(w, http.StatusOK, challenge.WithoutHints())
		return
	}

	var difficulty challenge_service.Difficulty
	if d := query.Get("difficulty"); d != "" {
		parsed, err := challenge_service.ParseDifficulty(d)
		if err != nil {
			handlerError(err, w)
			return
		}
		difficulty = parsed
	}

	cfg, err := a.resolveLlmConfig(r)
	if err != nil {
		handlerError(err, w)
		return
	}

	challenge, err := a.ChallengeServiceConfig.GenerateChallenge(
		r.Context(),
		cfg,
		difficulty,
		query.Get("context"),
		query.Get("language"),
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, challenge.WithoutHints())
}

// resolveLlmConfig turns the provider/model query parameters into an
// explicit per call llm config. No provider means the process default
// gemini credentials.
func (a *Api) resolveLlmConfig(r *http.Request) (llm.Config, error) {
	query := r.URL.Query()

	provider := query.Get("provider")
	if provider == "" {
		return llm.Config{Model: query.Get("model")}, nil
	}

	// custom provider requires a session user with a stored key
	claims, err := middleware.ParseClaimsFromRequest(r)
	if err != nil {
		return llm.Config{}, err
	}

	return a.KeyServiceConfig.ResolveConfig(
		r.Context(),
		claims.UserID,
		provider,
		query.Get("model"),
	)
}
