package api

import (
	"fmt"
	"net/http"

	"github.com/prepgrid/prepgrid/internal/service/llm"
)

type hintRequest struct {
	ChallengeID string `json:"challengeId"`
	HintIndex   int    `json:"hintIndex"`
	Code        string `json:"code"`
}

func (a *Api) HandlerGetHint(w http.ResponseWriter, r *http.Request) {
	var request hintRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if request.ChallengeID == "" {
		respondWithError(w, http.StatusBadRequest, "Challenge ID is required")
		return
	}

	result, err := a.ChallengeServiceConfig.GetHint(
		r.Context(),
		llm.Config{},
		request.ChallengeID,
		request.HintIndex,
		request.Code,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, result)
}
