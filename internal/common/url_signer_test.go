package common

import (
	"strings"
	"testing"
	"time"
)

func newTestSigner() *URLSignerService {
	return NewURLSignerService([]byte("test-signing-key"), NewCacheService(60, 600))
}

func TestURLSigner_GenerateAndValidate(t *testing.T) {
	signer := newTestSigner()

	tokenString, err := signer.GenerateExportToken("cabrillo", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	token, err := signer.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}

	if token.Format != "cabrillo" {
		t.Errorf("Expected format cabrillo, got %s", token.Format)
	}
	if token.TokenID == "" {
		t.Error("Expected a token id")
	}
	if !token.ExpiresAt.After(time.Now()) {
		t.Error("Expected expiry in the future")
	}
}

func TestURLSigner_RejectsTamperedToken(t *testing.T) {
	signer := newTestSigner()

	tokenString, err := signer.GenerateExportToken("adif", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tampered := tokenString[:len(tokenString)-2] + "xx"
	if _, err := signer.ValidateToken(tampered); err == nil {
		t.Error("Expected tampered token to be rejected")
	}
}

func TestURLSigner_RejectsWrongKey(t *testing.T) {
	signer := newTestSigner()
	other := NewURLSignerService([]byte("different-key"), NewCacheService(60, 600))

	tokenString, err := signer.GenerateExportToken("adif", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := other.ValidateToken(tokenString); err == nil {
		t.Error("Expected token signed with another key to be rejected")
	}
}

func TestURLSigner_RejectsExpiredToken(t *testing.T) {
	signer := newTestSigner()

	tokenString, err := signer.GenerateExportToken("cabrillo", -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := signer.ValidateToken(tokenString); err == nil {
		t.Error("Expected expired token to be rejected")
	}
}

func TestURLSigner_SingleUse(t *testing.T) {
	signer := newTestSigner()

	tokenString, err := signer.GenerateExportToken("cabrillo", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	token, err := signer.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}

	signer.MarkTokenAsUsed(token.TokenID, 30*time.Minute)

	if _, err := signer.ValidateToken(tokenString); err == nil {
		t.Error("Expected reused token to be rejected")
	} else if !strings.Contains(err.Error(), "already used") {
		t.Errorf("Expected reuse error, got %v", err)
	}
}

func TestURLSigner_TokensAreUnique(t *testing.T) {
	signer := newTestSigner()

	first, err := signer.GenerateExportToken("cabrillo", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := signer.GenerateExportToken("cabrillo", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first == second {
		t.Error("Expected distinct tokens for separate requests")
	}
}
