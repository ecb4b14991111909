package auth

import (
	"testing"
	"time"

	"github.com/memberhub/members-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "64f0c2a1b2c3d4e5f6a7b8c9",
		Username: "alice",
		Admin:    true,
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	signed, err := codec.Sign(testUser())
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	claims, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "64f0c2a1b2c3d4e5f6a7b8c9" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Username != "alice" || !claims.Admin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("secret", time.Nanosecond)

	signed, err := codec.Sign(testUser())
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := codec.Verify(signed); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	signed, err := NewTokenCodec("secret", time.Hour).Sign(testUser())
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	if _, err := NewTokenCodec("other-secret", time.Hour).Verify(signed); err == nil {
		t.Fatalf("expected token signed with a different secret to be rejected")
	}
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	if _, err := codec.Verify("not-a-token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}

func TestNewTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("secret", 0)
	if codec.TTL() != 30*24*time.Hour {
		t.Fatalf("expected 30-day default TTL, got %s", codec.TTL())
	}
}
