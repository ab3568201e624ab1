package key_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service/llm"
)

// ResolveConfig builds the per call llm config for a user's stored
// provider key. modelOverride wins over the model saved with the key.
func (k *KeyService) ResolveConfig(
	ctx context.Context,
	userID int32,
	provider string,
	modelOverride string,
) (llm.Config, error) {
	parsedProvider, err := parseProvider(provider)
	if err != nil {
		return llm.Config{}, err
	}

	dbKey, err := k.DB.GetApiKeyByUserAndProvider(
		ctx,
		database.GetApiKeyByUserAndProviderParams{
			UserID:   userID,
			Provider: string(parsedProvider),
		},
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return llm.Config{}, fmt.Errorf(
				"%w, no %s api key saved for this user",
				prep_errors.ErrNotConfigured,
				parsedProvider,
			)
		}
		log.Errorf("failed to fetch %s api key for user %d, %v", parsedProvider, userID, err)
		return llm.Config{}, errors.Join(prep_errors.ErrInternal, err)
	}

	cfg := llm.Config{
		Provider: parsedProvider,
		APIKey:   dbKey.ApiKey,
	}
	switch {
	case modelOverride != "":
		cfg.Model = modelOverride
	case dbKey.Model != nil && *dbKey.Model != "":
		cfg.Model = *dbKey.Model
	}
	return cfg, nil
}
