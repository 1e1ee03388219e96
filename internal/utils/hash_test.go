package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt-encoded hash, got %q", hash)
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// each call embeds a fresh salt
	if first == second {
		t.Error("expected different hashes for the same password")
	}
	if !VerifyPassword("secret123", first) || !VerifyPassword("secret123", second) {
		t.Error("both hashes must verify against the original password")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes
	_, err := HashPassword(strings.Repeat("x", 100))
	if err == nil {
		t.Fatal("expected error for over-long password, got nil")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"matching password", "secret123", hash, true},
		{"wrong password", "secret124", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "secret123", "not-a-bcrypt-hash", false},
		{"empty hash", "secret123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.password, tt.hash); got != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}
