package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

/*
	claims are shared via the request context under a service owned key
	to avoid collisions with other context users
*/

const (
	KeyJwtSessionCookieName = "jwt_session"
)

// ParseClaimsFromRequest extracts and verifies the session claims from
// the jwt session cookie. Also used directly by handlers whose auth is
// optional.
func ParseClaimsFromRequest(r *http.Request) (service.UserCredentialClaims, error) {
	var claims service.UserCredentialClaims

	cookie, err := r.Cookie(KeyJwtSessionCookieName)
	if err != nil {
		return claims, fmt.Errorf(
			"%w, no session cookie present",
			prep_errors.ErrUnAuthorized,
		)
	}

	secret := os.Getenv(service.KeySecretKey)
	if secret == "" {
		return claims, fmt.Errorf(
			"%w, %s not found in environment",
			prep_errors.ErrInternal,
			service.KeySecretKey,
		)
	}

	token, err := jwt.ParseWithClaims(
		cookie.Value,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		},
	)
	if err != nil || !token.Valid {
		return claims, errors.Join(
			fmt.Errorf("%w, invalid session token", prep_errors.ErrUnAuthorized),
			err,
		)
	}

	return claims, nil
}

// JWTMiddleware rejects requests without a valid session cookie and puts
// the verified claims on the request context.
func JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := ParseClaimsFromRequest(r)
		if err != nil {
			http.Error(w, prep_errors.ErrUnAuthorized.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), service.KeyCtxUserCredClaims, claims)
		next(w, r.WithContext(ctx))
	}
}
