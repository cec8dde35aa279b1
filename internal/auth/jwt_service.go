package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "techshop/internal/errors"
)

const (
	// DefaultAccessTokenExpiry is the lifetime of access tokens when none is configured.
	DefaultAccessTokenExpiry = 30 * time.Minute
	// TokenType is the OAuth2 token type returned alongside access tokens.
	TokenType = "bearer"
	// ContextKey is the echo context key holding the verified token subject.
	ContextKey = "subject"
)

// JWTService issues and verifies HS256 access tokens whose subject is the user's email.
// The signing key is fixed for the lifetime of the service.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret and token lifetime.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// Issue generates a signed access token for subject.
func (s *JWTService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("empty subject")
	}
	now := s.now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns its subject. It fails with ErrExpiredToken when the
// token is otherwise valid but past its expiry, and ErrInvalidToken for everything else.
func (s *JWTService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenUnverifiable),
			errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", apperrors.ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", apperrors.ErrExpiredToken
		default:
			return "", apperrors.ErrInvalidToken
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.Subject, nil
}
