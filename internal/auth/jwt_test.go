package auth_test

import (
	"testing"
	"time"

	"github.com/astrolaunch/launchpad/internal/auth"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	m := auth.NewManager("test-secret", 24*time.Hour)

	token, err := m.GenerateToken("user-1", "a@x.com", "user")

	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := m.VerifyToken(token)

	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("got userID %q, want %q", claims.UserID, "user-1")
	}

	if claims.Email != "a@x.com" {
		t.Errorf("got email %q, want %q", claims.Email, "a@x.com")
	}

	if claims.Role != "user" {
		t.Errorf("got role %q, want %q", claims.Role, "user")
	}
}

func TestVerifyTokenFailures(t *testing.T) {
	m := auth.NewManager("test-secret", 24*time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
		},
		{
			name: "empty",
			token: func(t *testing.T) string {
				return ""
			},
		},
		{
			name: "wrong_secret",
			token: func(t *testing.T) string {
				other := auth.NewManager("different-secret", 24*time.Hour)

				token, err := other.GenerateToken("user-1", "a@x.com", "user")

				if err != nil {
					t.Fatalf("GenerateToken failed: %v", err)
				}

				return token
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				expired := auth.NewManager("test-secret", -1*time.Hour)

				token, err := expired.GenerateToken("user-1", "a@x.com", "user")

				if err != nil {
					t.Fatalf("GenerateToken failed: %v", err)
				}

				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.VerifyToken(tt.token(t))

			if err == nil {
				t.Fatal("expected verification to fail")
			}
		})
	}
}
