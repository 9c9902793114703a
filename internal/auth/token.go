package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("token is malformed")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrExpired      = errors.New("token has expired")
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authority signs and verifies HS256 identity tokens. The secret and the
// lifetime are fixed for the lifetime of the process.
type Authority struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

type Option func(a *Authority)

// WithClock replaces the time source used for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(a *Authority) {
		a.now = now
	}
}

func NewAuthority(secret string, lifetime time.Duration, opts ...Option) (*Authority, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", lifetime)
	}

	a := &Authority{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

func (a *Authority) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", errors.New("token subject is empty")
	}

	now := a.now()
	claims := &Claims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify returns the subject of a token, or an error matching ErrMalformed,
// ErrBadSignature or ErrExpired.
func (a *Authority) Verify(tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", classify(err)
	}

	if claims.UserID == "" {
		return "", fmt.Errorf("%w: subject is missing", ErrMalformed)
	}

	return claims.UserID, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
