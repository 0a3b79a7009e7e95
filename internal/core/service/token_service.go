package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskdeck/todo-system/internal/core/domain"
	"github.com/taskdeck/todo-system/internal/core/ports"
)

// tokenClaims is the JWT payload: subject carries the user id, Email is the
// single custom claim.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService signs and verifies identity tokens. Signing key, algorithm,
// and lifetime are fixed at construction and never change at runtime.
type TokenService struct {
	secret   []byte
	method   jwt.SigningMethod
	tokenTTL time.Duration
}

// NewTokenService builds a TokenService for the given HMAC algorithm name
// (HS256, HS384 or HS512). Unknown names fall back to HS256; a non-positive
// ttl falls back to 24h.
func NewTokenService(secret string, algorithm string, tokenTTL time.Duration) *TokenService {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), method: method, tokenTTL: tokenTTL}
}

func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Email: email,
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	return &ports.TokenClaims{UserID: claims.Subject, Email: claims.Email}, nil
}
