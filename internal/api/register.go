package api

import (
	"fmt"
	"net/http"

	"github.com/prepgrid/prepgrid/internal/service/auth_service"
)

func (a *Api) HandlerRegister(w http.ResponseWriter, r *http.Request) {
	var request auth_service.UserRegistration
	if err := decodeJsonBody(r.Body, &request); err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	userResponse, err := a.AuthServiceConfig.Register(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, userResponse)
}
