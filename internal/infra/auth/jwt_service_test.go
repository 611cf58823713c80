package auth

import (
	"testing"
	"time"

	"asana/config"
	"asana/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "yogi@example.com",
	}

	token, err := jwtService.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_Expired(t *testing.T) {
	// A negative TTL mints a token that is already past its expiry.
	cfg := newTestTokenConfig(time.Hour)
	cfg.Auth.TokenTTL = -time.Minute

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.Issue(&entity.User{ID: uuid.New(), Email: "yogi@example.com"})
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	other := newTestTokenConfig(time.Hour)
	other.SecretKey.Token = "a_completely_different_secret_key_value"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: uuid.New(), Email: "yogi@example.com"})
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(30 * time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, jwtService.TokenTTL())
}
