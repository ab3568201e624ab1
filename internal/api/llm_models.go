package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

func (a *Api) HandlerGetLlmModels(w http.ResponseWriter, r *http.Request) {
	provider, err := llm.ParseProvider(chi.URLParam(r, "provider"))
	if err != nil {
		handlerError(err, w)
		return
	}

	models, err := llm.ModelsFor(provider)
	if err != nil {
		handlerError(err, w)
		return
	}

	response := struct {
		Provider string   `json:"provider"`
		Models   []string `json:"models"`
	}{
		Provider: string(provider),
		Models:   models,
	}
	marshalAndRespond(w, http.StatusOK, response)
}
