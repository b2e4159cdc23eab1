// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hrms_backend/internals/configs"
)

// IssueAccessToken mints a signed HS256 bearer token for the admin.
// Tokens are stateless: no server-side list, expiry is the only limit.
func IssueAccessToken(username string) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(configs.TokenExpireMinutes) * time.Minute).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
