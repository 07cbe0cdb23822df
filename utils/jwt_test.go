package utils

import (
	"strings"
	"testing"
	"time"

	"pluggedin/config"
	"pluggedin/models"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	config.AppConfig.AccessTokenKey = "test-secret"

	user := models.User{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Role:        models.RoleUser,
	}

	token, err := GenerateSessionToken(&user)
	if err != nil {
		t.Fatalf("GenerateSessionToken() error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken() error: %v", err)
	}
	if claims.Email != user.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.DisplayName != user.DisplayName {
		t.Errorf("claims.DisplayName = %q, want %q", claims.DisplayName, user.DisplayName)
	}
	if claims.Role != models.RoleUser {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleUser)
	}
}

func TestSessionToken_TwoDayExpiry(t *testing.T) {
	config.AppConfig.AccessTokenKey = "test-secret"

	token, err := GenerateSessionToken(&models.User{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error: %v", err)
	}
	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken() error: %v", err)
	}

	until := time.Until(claims.ExpiresAt.Time)
	if until < 47*time.Hour || until > 49*time.Hour {
		t.Errorf("token expires in %v, want about 48h", until)
	}
}

func TestParseSessionToken_TamperedSignature(t *testing.T) {
	config.AppConfig.AccessTokenKey = "test-secret"

	token, err := GenerateSessionToken(&models.User{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseSessionToken(tampered); err == nil {
		t.Error("expected a tampered token to be rejected")
	}
}

func TestParseSessionToken_WrongKey(t *testing.T) {
	config.AppConfig.AccessTokenKey = "test-secret"
	token, err := GenerateSessionToken(&models.User{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error: %v", err)
	}

	config.AppConfig.AccessTokenKey = "other-secret"
	defer func() { config.AppConfig.AccessTokenKey = "test-secret" }()

	if _, err := ParseSessionToken(token); err == nil {
		t.Error("expected a token signed with another key to be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"alice@example.com", true},
		{"a.b+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"alice@", false},
	}
	for _, tc := range cases {
		err := ValidateEmail(tc.email)
		if tc.ok && err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", tc.email, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", tc.email)
		}
		if err != nil && !strings.Contains(err.Error(), "invalid email") {
			t.Errorf("ValidateEmail(%q) error %q should mention invalid email", tc.email, err)
		}
	}
}
