package prep_errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

const (
	CodeUniqueConstraint     = "23505"
	CodeForeignKeyConstraint = "23503"
)

var (
	ErrInternal               = errors.New("internal service error. please try again later")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrNotFound               = errors.New("entity not found")
	ErrEntityAlreadyExist     = errors.New("entity with given key already exist")
	ErrInvalidUserCredentials = errors.New("invalid username and password")
	ErrUnAuthorized           = errors.New("user not allowed to perform this action")
	ErrNotConfigured          = errors.New("llm api key not configured")
	ErrUpstreamCall           = errors.New("llm call failed")
	ErrGenerationParse        = errors.New("unable to parse generated challenge")
	ErrFeedbackGeneration     = errors.New("error generating feedback")
)

// HandleDBErrors converts low level database errors into service sentinels.
// errMsgs maps a pg error code to a constraint_name -> user message map.
func HandleDBErrors(
	err error,
	errMsgs map[string]map[string]string,
	contextMessage string,
) error {
	if errors.Is(err, pgx.ErrNoRows) {
		log.Error(fmt.Sprintf("%s, %v", contextMessage, ErrNotFound))
		return ErrNotFound
	}

	// assume its an internal error first
	err = fmt.Errorf(
		"%w, %s, %w",
		ErrInternal,
		contextMessage,
		err,
	)

	// check if its a pg error
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		log.Error(err)
		return err
	}

	if errMsgs == nil {
		log.Warnf("got null errMsgs")
		log.Error(err)
		return err
	}

	if pgErr.Code == CodeForeignKeyConstraint {
		msgForeignKey, ok := errMsgs[CodeForeignKeyConstraint]
		if !ok {
			log.Warnf("no msg map found for foreign key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return handleConstraintError(pgErr, msgForeignKey, ErrInvalidRequest)
	}

	if pgErr.Code == CodeUniqueConstraint {
		msgUniqueConstraint, ok := errMsgs[CodeUniqueConstraint]
		if !ok {
			log.Warnf("no msg map found for unique key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return handleConstraintError(pgErr, msgUniqueConstraint, ErrEntityAlreadyExist)
	}

	// unknown error
	log.Error(err)
	return err
}

func handleConstraintError(
	pgErr *pgconn.PgError,
	msgByConstraint map[string]string,
	sentinel error,
) error {
	msg, ok := msgByConstraint[pgErr.ConstraintName]
	if !ok {
		log.Warnf(
			"unknown constraint violation %s, code %s",
			pgErr.ConstraintName,
			pgErr.Code,
		)
		msg = pgErr.Detail
	}
	err := fmt.Errorf(
		"%w, %s",
		sentinel,
		msg,
	)
	log.Error(err)
	return err
}
