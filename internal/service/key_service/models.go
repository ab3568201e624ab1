package key_service

import (
	"time"

	"github.com/google/uuid"
	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

var (
	msgForeignKey = map[string]string{
		"fk_llm_api_keys_user_id": "no user exist for that api key",
	}

	errMsgs = map[string]map[string]string{
		prep_errors.CodeForeignKeyConstraint: msgForeignKey,
	}
)

type KeyService struct {
	DB *database.Queries
}

type ApiKeyRequest struct {
	Provider string  `json:"provider" validate:"required,oneof=openai anthropic gemini"`
	ApiKey   string  `json:"api_key" validate:"required"`
	Model    *string `json:"model"`
}

type ApiKeyResponse struct {
	ID        uuid.UUID `json:"id"`
	Provider  string    `json:"provider"`
	ApiKey    string    `json:"api_key"`
	Model     *string   `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const maskedPrefix = "••••••"

// maskApiKey hides everything but the last 4 characters of a key.
func maskApiKey(key string) string {
	if len(key) <= 4 {
		return maskedPrefix
	}
	return maskedPrefix + key[len(key)-4:]
}

func keyToResponse(key database.LlmApiKey) ApiKeyResponse {
	return ApiKeyResponse{
		ID:        key.ID,
		Provider:  key.Provider,
		ApiKey:    maskApiKey(key.ApiKey),
		Model:     key.Model,
		CreatedAt: key.CreatedAt,
	}
}

// parseProvider is shared request plumbing, the provider enum itself
// lives with the llm clients.
func parseProvider(s string) (llm.Provider, error) {
	return llm.ParseProvider(s)
}
