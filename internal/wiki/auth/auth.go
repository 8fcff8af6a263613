// Package auth gates the administrative endpoints behind a stateless,
// signed, time-limited bearer token. There is no session store; possession
// of a valid token is the whole credential.
package auth

import (
	"errors"
	"time"

	"Boettcher_Wiki/internal/config"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for every authentication failure: unknown
// username, wrong password, malformed, forged or expired token. A single
// error for all causes keeps username enumeration impossible.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator issues and verifies admin tokens against the static
// credential table from the configuration.
type Authenticator struct {
	secret      []byte
	tokenTTL    time.Duration
	issuer      string
	credentials map[string]string // username -> bcrypt password hash
}

// NewAuthenticator creates an Authenticator from the injected auth config.
func NewAuthenticator(cfg *config.AuthConfig, issuer string) *Authenticator {
	credentials := make(map[string]string, len(cfg.Admins))
	for _, admin := range cfg.Admins {
		credentials[admin.Username] = admin.PasswordHash
	}
	return &Authenticator{
		secret:      []byte(cfg.JwtSecret),
		tokenTTL:    time.Duration(cfg.TokenTTL) * time.Second,
		issuer:      issuer,
		credentials: credentials,
	}
}

// Login checks the username and password against the credential table and
// issues a signed token on success.
func (a *Authenticator) Login(username, password string) (string, error) {
	hash, ok := a.credentials[username]
	if !ok {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.generateJWT(username)
}

// Verify parses and validates a token and returns the subject username.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", ErrInvalidCredentials
	}
	return username, nil
}

// generateJWT creates a signed token for the given admin username.
func (a *Authenticator) generateJWT(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iss": a.issuer,
		"iat": now.Unix(),
		"exp": now.Add(a.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(a.secret)
}
