package key_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

type UpdateApiKeyRequest struct {
	ApiKey string  `json:"api_key" validate:"required"`
	Model  *string `json:"model"`
}

// UpdateKey replaces the key value and model of one of the session
// user's api keys. The update is scoped by user id, another user's key
// id comes back as not found.
func (k *KeyService) UpdateKey(
	ctx context.Context,
	keyID uuid.UUID,
	request UpdateApiKeyRequest,
) (ApiKeyResponse, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return ApiKeyResponse{}, err
	}

	if err = service.ValidateInput(request); err != nil {
		return ApiKeyResponse{}, err
	}

	dbKey, err := k.DB.UpdateApiKey(
		ctx,
		database.UpdateApiKeyParams{
			ID:     keyID,
			UserID: claims.UserID,
			ApiKey: request.ApiKey,
			Model:  request.Model,
		},
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ApiKeyResponse{}, fmt.Errorf(
				"%w, no api key exist with the given id",
				prep_errors.ErrNotFound,
			)
		}
		log.Errorf("failed to update api key %s, %v", keyID, err)
		return ApiKeyResponse{}, errors.Join(prep_errors.ErrInternal, err)
	}

	log.WithFields(log.Fields{
		"user_name": claims.UserName,
		"key_id":    dbKey.ID,
	}).Info("updated llm api key")

	return keyToResponse(dbKey), nil
}
