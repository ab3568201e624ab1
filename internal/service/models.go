package service

import "github.com/golang-jwt/jwt/v4"

type UserCredentialClaims struct {
	UserID   int32  `json:"user_id"`
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}
