package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/prepgrid/prepgrid/middleware"
)

func NewApiRouter() *chi.Mux {
	r := chi.NewRouter()

	// configure all endpoints
	r.Get("/healthz", apiConfig.HandlerReadiness)

	// auth layer
	r.Post("/register", apiConfig.HandlerRegister)
	r.Post("/login", apiConfig.HandlerLogin)
	r.Post("/logout", apiConfig.HandlerLogout)
	r.Get("/user", middleware.JWTMiddleware(apiConfig.HandlerGetMe))

	// challenges layer
	// generation and lookup (session optional, custom provider needs one)
	r.Get("/challenge", apiConfig.HandlerGetChallenge)
	r.Get("/challenges", apiConfig.HandlerGetChallenges)
	// hints and solution feedback
	r.Post("/hint", apiConfig.HandlerGetHint)
	r.Post("/submit", apiConfig.HandlerSubmitSolution)

	// llm api keys layer
	r.Get("/api-keys", middleware.JWTMiddleware(apiConfig.HandlerGetApiKeys))
	r.Post("/api-keys", middleware.JWTMiddleware(apiConfig.HandlerCreateApiKey))
	r.Put("/api-keys/{keyID}", middleware.JWTMiddleware(apiConfig.HandlerUpdateApiKey))
	r.Delete("/api-keys/{keyID}", middleware.JWTMiddleware(apiConfig.HandlerDeleteApiKey))

	// provider model catalog
	r.Get("/llm-models/{provider}", apiConfig.HandlerGetLlmModels)

	return r
}
