package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

// callTimeout bounds every upstream model call so a hung provider cannot
// hang the request forever.
const callTimeout = 90 * time.Second

var httpClient = &http.Client{Timeout: callTimeout}

// Client is a single llm vendor endpoint.
type Client interface {
	Name() string
	Generate(ctx context.Context, request Request) (string, error)
}

// ClientFactory builds a Client from a per-call Config. Declared as a
// type so services can be handed a fake during tests.
type ClientFactory func(cfg Config) (Client, error)

// NewClient resolves the config and returns a client for its provider.
// Credential resolution: explicit key, else the process wide default
// gemini key, else ErrNotConfigured.
func NewClient(cfg Config) (Client, error) {
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
	if cfg.APIKey == "" {
		if cfg.Provider == ProviderGemini {
			cfg.APIKey = os.Getenv(service.KeyGeminiApiKey)
		}
		if cfg.APIKey == "" {
			err := fmt.Errorf(
				"%w, no api key available for provider %s",
				prep_errors.ErrNotConfigured,
				cfg.Provider,
			)
			log.Error(err)
			return nil, err
		}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderGemini:
		return &geminiClient{model: cfg.Model, apiKey: cfg.APIKey}, nil
	case ProviderOpenAI:
		return &openAIClient{model: cfg.Model, apiKey: cfg.APIKey}, nil
	case ProviderAnthropic:
		return &anthropicClient{model: cfg.Model, apiKey: cfg.APIKey}, nil
	default:
		return nil, fmt.Errorf(
			"%w, unknown llm provider %q",
			prep_errors.ErrInvalidRequest,
			cfg.Provider,
		)
	}
}

// GenerateText is a convenience for the common single turn call.
func GenerateText(ctx context.Context, client Client, prompt string) (string, error) {
	return client.Generate(ctx, Request{
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	})
}

func upstreamError(name string, err error) error {
	wrapped := fmt.Errorf(
		"%w, %s request failed, %w",
		prep_errors.ErrUpstreamCall,
		name,
		err,
	)
	log.Error(wrapped)
	return wrapped
}

func upstreamStatusError(name string, status int, body string) error {
	const maxBodyLog = 512
	if len(body) > maxBodyLog {
		body = body[:maxBodyLog]
	}
	err := fmt.Errorf(
		"%w, %s responded with status %d",
		prep_errors.ErrUpstreamCall,
		name,
		status,
	)
	log.WithField("body", body).Error(err)
	return err
}
