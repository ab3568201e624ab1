package auth_service

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"golang.org/x/crypto/bcrypt"
)

func generatePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("unable to hash password, %v", err)
		return "", errors.Join(prep_errors.ErrInternal, err)
	}
	return string(hash), nil
}

func comparePasswordHash(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf(
			"%w, wrong password",
			prep_errors.ErrInvalidUserCredentials,
		)
	}
	return nil
}
