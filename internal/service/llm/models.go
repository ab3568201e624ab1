package llm

import (
	"fmt"

	"github.com/prepgrid/prepgrid/internal/prep_errors"
)

type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Config carries everything a single model call needs. It is resolved
// per request, there is no shared mutable model handle.
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
}

type Message struct {
	Role    string
	Content string
}

type Request struct {
	Messages []Message
}

var defaultModels = map[Provider]string{
	ProviderGemini:    "gemini-2.0-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-sonnet-20241022",
}

var providerModels = map[Provider][]string{
	ProviderGemini: {
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-1.5-pro",
		"gemini-1.5-flash",
	},
	ProviderOpenAI: {
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4-turbo",
		"gpt-3.5-turbo",
	},
	ProviderAnthropic: {
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
		"claude-3-opus-20240229",
	},
}

func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
		return Provider(s), nil
	default:
		return "", fmt.Errorf(
			"%w, unknown llm provider %q",
			prep_errors.ErrInvalidRequest,
			s,
		)
	}
}

// ModelsFor returns the model catalog of a provider.
func ModelsFor(provider Provider) ([]string, error) {
	models, ok := providerModels[provider]
	if !ok {
		return nil, fmt.Errorf(
			"%w, unknown llm provider %q",
			prep_errors.ErrInvalidRequest,
			provider,
		)
	}
	return models, nil
}

// DefaultModel returns the model used when a config does not name one.
func DefaultModel(provider Provider) string {
	return defaultModels[provider]
}
