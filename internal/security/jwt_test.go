package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/shop-api/internal/core/domain"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("supersecret", time.Hour)
	user := &domain.User{ID: "u1", Role: domain.RoleAdmin}

	token, issued, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, issued.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, issued.TokenID, claims.TokenID)
}

func TestJWTManager_UniqueTokenIDs(t *testing.T) {
	m := NewJWTManager("supersecret", time.Hour)
	user := &domain.User{ID: "u1", Role: domain.RoleCustomer}

	_, a, err := m.Issue(user)
	require.NoError(t, err)
	_, b, err := m.Issue(user)
	require.NoError(t, err)
	assert.NotEqual(t, a.TokenID, b.TokenID)
}

func TestJWTManager_Verify_Failures(t *testing.T) {
	m := NewJWTManager("supersecret", time.Hour)
	user := &domain.User{ID: "u1", Role: domain.RoleCustomer}

	t.Run("expired token", func(t *testing.T) {
		past := NewJWTManager("supersecret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := past.Issue(user)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong signature", func(t *testing.T) {
		other := NewJWTManager("othersecret", time.Hour)
		token, _, err := other.Issue(user)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := m.Verify("not.a.jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"uid": "u1", "role": "admin", "jti": "x", "iss": issuer,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		s, _ := tok.SignedString([]byte("supersecret"))

		_, err := m.Verify(s)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("missing expiry", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"uid": "u1", "role": "admin", "jti": "x", "iss": issuer,
		})
		s, _ := tok.SignedString([]byte("supersecret"))

		_, err := m.Verify(s)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
