package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hrms_backend/internals/configs"
)

func TestIssueAccessToken(t *testing.T) {
	configs.JWTSecret = "token-test-secret"
	configs.TokenExpireMinutes = 60

	tokenString, err := IssueAccessToken("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("token-test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["sub"] != "admin" {
		t.Fatalf("expected sub=admin, got %v", claims["sub"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	until := time.Until(time.Unix(int64(exp), 0))
	if until <= 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("expiry not ~60m out: %s", until)
	}
}

func TestIssueAccessTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, err := IssueAccessToken("admin"); err == nil {
		t.Fatal("expected error without secret")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("plaintext stored")
	}
	if err := CheckPasswordHash(hash, "admin123"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := CheckPasswordHash(hash, "nope"); err == nil {
		t.Fatal("wrong password accepted")
	}
}
