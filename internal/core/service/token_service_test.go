package service

import (
	"testing"
	"time"

	"github.com/saasdash/dashboard-api/internal/core/domain"
)

func TestTokenService_AccessRoundTrip(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 0, 0)

	token, err := svc.IssueAccessToken("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	identity, err := svc.VerifyAccess(token)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if identity.UserID != "user-1" {
		t.Fatalf("unexpected user id: %q", identity.UserID)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %q", identity.Role)
	}
}

func TestTokenService_RefreshRoundTrip(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 0, 0)

	token, err := svc.IssueRefreshToken("user-2", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}

	identity, err := svc.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("verify refresh token: %v", err)
	}
	if identity.UserID != "user-2" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("access-secret", "refresh-secret", 0, 0)
	verifier := NewTokenService("other-secret", "refresh-secret", 0, 0)

	token, err := issuer.IssueAccessToken("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.VerifyAccess(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_FlavorsDoNotSubstitute(t *testing.T) {
	// Same secret for both flavors: only the token_type claim separates them.
	svc := NewTokenService("shared-secret", "shared-secret", 0, 0)

	refresh, err := svc.IssueRefreshToken("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}
	if _, err := svc.VerifyAccess(refresh); err != domain.ErrInvalidToken {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}

	access, err := svc.IssueAccessToken("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if _, err := svc.VerifyRefresh(access); err != domain.ErrInvalidToken {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Millisecond, 0)

	token, err := svc.IssueAccessToken("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := svc.VerifyAccess(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 0, 0)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyAccess(token); err != domain.ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
