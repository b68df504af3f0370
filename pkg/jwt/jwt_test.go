package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/ecelliitbhu/ecell-backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:     "test-secret-key-for-unit-testing-2026",
		AdminTokenTTL: 12 * time.Hour,
	})
}

func TestGenerateAndParseAdminToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAdminToken("admin@ecell.in")
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.Email != "admin@ecell.in" {
		t.Errorf("expected Email=admin@ecell.in, got %s", claims.Email)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("expected Role=admin, got %s", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("expected TokenType=access, got %s", claims.TokenType)
	}
	if claims.Issuer != "ecell-backend" {
		t.Errorf("expected Issuer=ecell-backend, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI must not be empty")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 11*time.Hour || ttl > 13*time.Hour {
		t.Errorf("expected TTL of about 12h, got %v", ttl)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	token, _ := m.GenerateAdminToken("admin@ecell.in")

	other := NewManager(&config.AuthConfig{JWTSecret: "another-secret-key-for-tests", AdminTokenTTL: time.Hour})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{JWTSecret: "test-secret-key-for-unit-testing-2026", AdminTokenTTL: -time.Minute})
	token, err := m.GenerateAdminToken("admin@ecell.in")
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_NoneAlgorithm(t *testing.T) {
	m := newTestManager()
	claims := Claims{Email: "x@y.z", Role: RoleAdmin, TokenType: TokenTypeAccess,
		RegisteredClaims: jwtv5.RegisteredClaims{Issuer: "ecell-backend"}}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, claims)
	s, err := token.SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := m.ParseToken(s); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	if _, err := m.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
