package key_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

// DeleteKey removes one of the session user's api keys.
func (k *KeyService) DeleteKey(ctx context.Context, keyID uuid.UUID) error {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	rows, err := k.DB.DeleteApiKey(
		ctx,
		database.DeleteApiKeyParams{
			ID:     keyID,
			UserID: claims.UserID,
		},
	)
	if err != nil {
		log.Errorf("failed to delete api key %s, %v", keyID, err)
		return errors.Join(prep_errors.ErrInternal, err)
	}
	if rows == 0 {
		return fmt.Errorf(
			"%w, no api key exist with the given id",
			prep_errors.ErrNotFound,
		)
	}

	log.WithFields(log.Fields{
		"user_name": claims.UserName,
		"key_id":    keyID,
	}).Info("deleted llm api key")

	return nil
}
