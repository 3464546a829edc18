package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the claims carried by a session token.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
