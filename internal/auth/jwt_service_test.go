package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "techshop/internal/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.Issue("test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", subject)
}

func TestJWTService_IssueRejectsEmptySubject(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	_, err := svc.Issue("")
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	assert.Equal(t, DefaultAccessTokenExpiry, svc.TTL())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.Issue("test@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	other := NewJWTService("other-secret", 30*time.Minute)

	foreign, err := other.Issue("test@example.com")
	require.NoError(t, err)

	expiredForeign := NewJWTService("other-secret", 30*time.Minute)
	expiredForeign.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredForged, err := expiredForeign.Issue("test@example.com")
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", foreign},
		{"wrong secret and expired", expiredForged},
		{"alg none", unsigned},
		{"missing subject", noSubject},
		{"garbage", "not-a-jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
			assert.Empty(t, subject)
		})
	}
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	first, err := svc.Issue("test@example.com")
	require.NoError(t, err)
	second, err := svc.Issue("test@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
