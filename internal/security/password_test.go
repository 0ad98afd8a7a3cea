package security_test

import (
	"testing"

	"github.com/astrolaunch/launchpad/internal/security"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := security.HashPassword("pw123456")

	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "pw123456" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := security.CheckPassword(hash, "pw123456"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}

	if err := security.CheckPassword(hash, "wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
}
