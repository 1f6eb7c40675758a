package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salonhq/salon-system/internal/core/domain"
)

func TestManager_IssueVerify_Roundtrip(t *testing.T) {
	m := NewManager("secret", time.Hour, 0)

	signed, err := m.Issue(42, domain.RoleStaff)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Role != domain.RoleStaff {
		t.Fatalf("expected role STAFF, got %s", claims.Role)
	}

	// verification is a pure function: a second call yields the same claims
	again, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if again.UserID != claims.UserID || again.Role != claims.Role {
		t.Fatalf("verify not idempotent: %+v vs %+v", again, claims)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	m := NewManager("secret", time.Hour, 0)

	past := time.Now().UTC().Add(-2 * time.Second)
	claims := Claims{
		UserID: 1,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_ExpiredWithinLeeway(t *testing.T) {
	m := NewManager("secret", time.Hour, 30*time.Second)

	justExpired := time.Now().UTC().Add(-2 * time.Second)
	claims := Claims{
		UserID: 1,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(justExpired),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(signed); err != nil {
		t.Fatalf("expected leeway to accept token, got %v", err)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour, 0)
	verifier := NewManager("secret-b", time.Hour, 0)

	signed, err := issuer.Issue(7, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_WrongAlgorithm(t *testing.T) {
	m := NewManager("secret", time.Hour, 0)

	// alg=none with a well-formed claims set must still fail uniformly
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 1,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(unsigned); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := NewManager("secret", time.Hour, 0)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(raw); err != domain.ErrInvalidToken {
			t.Fatalf("input %q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestManager_Verify_UnknownRole(t *testing.T) {
	m := NewManager("secret", time.Hour, 0)

	claims := Claims{
		UserID: 1,
		Role:   "SUPERUSER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
