package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims of both session tokens. Type tells them apart so a
// refresh token is never accepted as an access token.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenService issues and verifies the access and refresh tokens of a session.
type TokenService interface {
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)

	GetAccessTokenDuration() time.Duration
	GetRefreshTokenDuration() time.Duration
}
