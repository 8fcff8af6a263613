package auth

import (
	"errors"
	"testing"
	"time"

	"Boettcher_Wiki/internal/config"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "hunter2hunter2"

func newTestAuthenticator(t *testing.T, ttlSeconds int) *Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}
	return NewAuthenticator(&config.AuthConfig{
		JwtSecret: "unit-test-secret",
		TokenTTL:  ttlSeconds,
		Admins: []config.AdminCredential{
			{Username: "admin", PasswordHash: string(hash)},
		},
	}, "wiki-test")
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	a := newTestAuthenticator(t, 3600)

	token, err := a.Login("admin", testPassword)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	username, err := a.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if username != "admin" {
		t.Errorf("expected subject 'admin', got %q", username)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	a := newTestAuthenticator(t, 3600)

	_, unknownErr := a.Login("ghost", testPassword)
	_, wrongErr := a.Login("admin", "wrong password")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	a := newTestAuthenticator(t, -60) // already expired at issuance

	token, err := a.Login("admin", testPassword)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := a.Verify(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for expired token, got %v", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	a := newTestAuthenticator(t, 3600)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := a.Verify(token); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("token %q: expected ErrInvalidCredentials, got %v", token, err)
		}
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	a := newTestAuthenticator(t, 3600)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("some other secret"))
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}

	if _, err := a.Verify(signed); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for forged token, got %v", err)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	a := newTestAuthenticator(t, 3600)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := a.Verify(signed); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for token without subject, got %v", err)
	}
}
