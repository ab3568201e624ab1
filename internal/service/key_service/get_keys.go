package key_service

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

// GetKeys lists the session user's api keys, values masked.
func (k *KeyService) GetKeys(ctx context.Context) ([]ApiKeyResponse, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dbKeys, err := k.DB.GetApiKeysByUserId(ctx, claims.UserID)
	if err != nil {
		log.Errorf("failed to fetch api keys for user %s, %v", claims.UserName, err)
		return nil, errors.Join(prep_errors.ErrInternal, err)
	}

	responses := make([]ApiKeyResponse, 0, len(dbKeys))
	for _, dbKey := range dbKeys {
		responses = append(responses, keyToResponse(dbKey))
	}
	return responses, nil
}
