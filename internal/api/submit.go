package api

import (
	"fmt"
	"net/http"

	"github.com/prepgrid/prepgrid/internal/service/llm"
)

type submitRequest struct {
	ChallengeID string `json:"challengeId"`
	Code        string `json:"code"`
	Language    string `json:"language"`
}

func (a *Api) HandlerSubmitSolution(w http.ResponseWriter, r *http.Request) {
	var request submitRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if request.ChallengeID == "" || request.Code == "" {
		respondWithError(w, http.StatusBadRequest, "Challenge ID and code are required")
		return
	}

	feedback, err := a.ChallengeServiceConfig.GetFeedback(
		r.Context(),
		llm.Config{},
		request.ChallengeID,
		request.Code,
		request.Language,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	response := struct {
		Feedback string `json:"feedback"`
	}{Feedback: feedback}
	marshalAndRespond(w, http.StatusOK, response)
}
