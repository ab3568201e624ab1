package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/key_service"
)

func (a *Api) HandlerGetApiKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := a.KeyServiceConfig.GetKeys(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, keys)
}

func (a *Api) HandlerCreateApiKey(w http.ResponseWriter, r *http.Request) {
	var request key_service.ApiKeyRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	key, err := a.KeyServiceConfig.CreateKey(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, key)
}

func (a *Api) HandlerUpdateApiKey(w http.ResponseWriter, r *http.Request) {
	keyID, err := parseKeyID(r)
	if err != nil {
		handlerError(err, w)
		return
	}

	var request key_service.UpdateApiKeyRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	key, err := a.KeyServiceConfig.UpdateKey(r.Context(), keyID, request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, key)
}

func (a *Api) HandlerDeleteApiKey(w http.ResponseWriter, r *http.Request) {
	keyID, err := parseKeyID(r)
	if err != nil {
		handlerError(err, w)
		return
	}

	if err := a.KeyServiceConfig.DeleteKey(r.Context(), keyID); err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusOK, []byte(`{"message": "api key deleted"}`))
}

func parseKeyID(r *http.Request) (uuid.UUID, error) {
	keyID, err := uuid.Parse(chi.URLParam(r, "keyID"))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf(
			"%w, api key id must be a valid uuid",
			prep_errors.ErrInvalidRequest,
		)
	}
	return keyID, nil
}
