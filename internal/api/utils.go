package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
)

func decodeJsonBody(body io.Reader, v any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("unable to decode request body, %w", err)
	}
	return nil
}

func respondWithJson(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})
	if err != nil {
		http.Error(w, message, status)
		return
	}
	respondWithJson(w, status, payload)
}

// handlerError maps service sentinels to http status codes. Parse and
// upstream faults on the generation path collapse to the same 500.
func handlerError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, prep_errors.ErrInvalidRequest):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, prep_errors.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, prep_errors.ErrEntityAlreadyExist):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, prep_errors.ErrInvalidUserCredentials),
		errors.Is(err, prep_errors.ErrUnAuthorized):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, prep_errors.ErrNotConfigured):
		respondWithError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, prep_errors.ErrFeedbackGeneration):
		respondWithError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, prep_errors.ErrUpstreamCall),
		errors.Is(err, prep_errors.ErrGenerationParse):
		respondWithError(
			w,
			http.StatusInternalServerError,
			"Failed to generate challenge. Please check API key configuration.",
		)
	default:
		log.Errorf("unclassified handler error, %v", err)
		respondWithError(w, http.StatusInternalServerError, prep_errors.ErrInternal.Error())
	}
}

func marshalAndRespond(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Errorf("cannot marshal response %v, %v", v, err)
		respondWithError(w, http.StatusInternalServerError, prep_errors.ErrInternal.Error())
		return
	}
	respondWithJson(w, status, payload)
}
