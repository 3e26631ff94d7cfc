package auth

import (
	"testing"
	"time"
)

const testSecret = "my_test_jwt_secret"

func TestGenerateAndParseSessionToken(t *testing.T) {
	userID := uint(42)
	username := "testuser"
	exp := time.Hour

	tokenString, err := GenerateSessionToken(testSecret, userID, username, exp)
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}
	if tokenString == "" {
		t.Fatalf("empty token string")
	}

	claims, err := ParseSessionToken(testSecret, tokenString)
	if err != nil {
		t.Fatalf("failed to parse session token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected userId=%d, got %d", userID, claims.UserID)
	}
	if claims.Username != username {
		t.Errorf("expected username=%s, got %s", username, claims.Username)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		t.Errorf("token should not be expired, got expiresAt=%v", claims.ExpiresAt)
	}
}

func TestParseSessionToken_Invalid(t *testing.T) {
	invalidToken := "this.is.not.a.valid.jwt"
	_, err := ParseSessionToken(testSecret, invalidToken)
	if err == nil {
		t.Errorf("expected error for invalid token, got nil")
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateSessionToken(testSecret, 99, "wrongsecret", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}

	_, err = ParseSessionToken("totally_wrong_secret", tokenString)
	if err == nil {
		t.Errorf("expected error for wrong secret, got nil")
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	tokenString, err := GenerateSessionToken(testSecret, 7, "expired", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}

	_, err = ParseSessionToken(testSecret, tokenString)
	if err == nil {
		t.Errorf("expected error for expired token, got nil")
	}
}
