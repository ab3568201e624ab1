package key_service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prepgrid/prepgrid/internal/database"
)

func TestMaskApiKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{key: "sk-abcdefgh1234", want: maskedPrefix + "1234"},
		{key: "12345", want: maskedPrefix + "2345"},
		{key: "1234", want: maskedPrefix},
		{key: "", want: maskedPrefix},
	}

	for _, tc := range cases {
		if got := maskApiKey(tc.key); got != tc.want {
			t.Errorf("maskApiKey(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestKeyToResponseMasksValue(t *testing.T) {
	model := "gpt-4o"
	dbKey := database.LlmApiKey{
		ID:        uuid.New(),
		UserID:    7,
		Provider:  "openai",
		ApiKey:    "sk-secret-value-9876",
		Model:     &model,
		CreatedAt: time.Now(),
	}

	response := keyToResponse(dbKey)
	if response.ApiKey != maskedPrefix+"9876" {
		t.Errorf("response key = %q, want masked value", response.ApiKey)
	}
	if response.Provider != "openai" || response.ID != dbKey.ID {
		t.Errorf("response lost identity fields: %+v", response)
	}
	if response.Model == nil || *response.Model != "gpt-4o" {
		t.Errorf("response model = %v, want gpt-4o", response.Model)
	}
}
