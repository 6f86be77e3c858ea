package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	manager, err := NewJWTManager("", "issuer-for-test", time.Hour, time.Hour)
	if err == nil {
		t.Fatalf("expected error when secret is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when secret is empty")
	}
}

func TestNewJWTManagerDefaults(t *testing.T) {
	manager, err := NewJWTManager("test-secret", "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "social-pulse" {
		t.Fatalf("expected default issuer social-pulse, got %q", manager.issuer)
	}
	if manager.accessTTL != time.Hour {
		t.Fatalf("expected default access ttl 1h, got %s", manager.accessTTL)
	}
	if manager.refreshTTL != 7*24*time.Hour {
		t.Fatalf("expected default refresh ttl 168h, got %s", manager.refreshTTL)
	}
}

func TestJWTManagerIssueAndParseRoundTrip(t *testing.T) {
	manager, err := NewJWTManager("test-secret", "test-issuer", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pair, err := manager.IssuePair("user-001", "analyst")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens to be signed, got %+v", pair)
	}

	userID, err := manager.ParseAccess(pair.Access)
	if err != nil {
		t.Fatalf("unexpected access parse error: %v", err)
	}
	if userID != "user-001" {
		t.Fatalf("expected userID user-001, got %q", userID)
	}

	userID, err = manager.ParseRefresh(pair.Refresh)
	if err != nil {
		t.Fatalf("unexpected refresh parse error: %v", err)
	}
	if userID != "user-001" {
		t.Fatalf("expected userID user-001, got %q", userID)
	}
}

func TestJWTManagerRejectsCrossedTokenTypes(t *testing.T) {
	manager, err := NewJWTManager("test-secret", "test-issuer", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pair, err := manager.IssuePair("user-001", "analyst")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	if _, err := manager.ParseAccess(pair.Refresh); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("expected ErrWrongTokenType for refresh token, got %v", err)
	}
	if _, err := manager.ParseRefresh(pair.Access); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("expected ErrWrongTokenType for access token, got %v", err)
	}
}

func TestJWTManagerParseRejectsInvalidSignature(t *testing.T) {
	manager := &JWTManager{
		secret:     []byte("service-secret"),
		issuer:     "issuer",
		accessTTL:  time.Hour,
		refreshTTL: time.Hour,
	}

	forgedClaims := jwt.MapClaims{
		"sub": "user-001",
		"typ": TokenTypeAccess,
		"iss": "issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, forgedClaims)
	tokenString, err := forgedToken.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	if _, err := manager.ParseAccess(tokenString); err == nil {
		t.Fatalf("expected parse error for invalid signature")
	}
}

func TestJWTManagerParseRejectsMissingSubClaim(t *testing.T) {
	manager := &JWTManager{
		secret:     []byte("service-secret"),
		issuer:     "issuer",
		accessTTL:  time.Hour,
		refreshTTL: time.Hour,
	}

	claims := jwt.MapClaims{
		"typ": TokenTypeAccess,
		"iss": "issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = manager.ParseAccess(tokenString)
	if err == nil {
		t.Fatalf("expected parse error for missing sub claim")
	}
	if !strings.Contains(err.Error(), "token missing sub claim") {
		t.Fatalf("expected missing sub error, got %v", err)
	}
}

func TestJWTManagerParseRejectsExpiredToken(t *testing.T) {
	manager := &JWTManager{
		secret:     []byte("service-secret"),
		issuer:     "issuer",
		accessTTL:  time.Hour,
		refreshTTL: time.Hour,
	}

	claims := jwt.MapClaims{
		"sub": "user-001",
		"typ": TokenTypeAccess,
		"iss": "issuer",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := manager.ParseAccess(tokenString); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}
