package key_service

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

func (k *KeyService) CreateKey(
	ctx context.Context,
	request ApiKeyRequest,
) (ApiKeyResponse, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return ApiKeyResponse{}, err
	}

	if err = service.ValidateInput(request); err != nil {
		return ApiKeyResponse{}, err
	}

	dbKey, err := k.DB.CreateApiKey(
		ctx,
		database.CreateApiKeyParams{
			ID:       uuid.New(),
			UserID:   claims.UserID,
			Provider: request.Provider,
			ApiKey:   request.ApiKey,
			Model:    request.Model,
		},
	)
	if err != nil {
		return ApiKeyResponse{}, prep_errors.HandleDBErrors(
			err,
			errMsgs,
			"failed to insert api key into db",
		)
	}

	log.WithFields(log.Fields{
		"user_name": claims.UserName,
		"provider":  dbKey.Provider,
		"key_id":    dbKey.ID,
	}).Info("created llm api key")

	return keyToResponse(dbKey), nil
}
