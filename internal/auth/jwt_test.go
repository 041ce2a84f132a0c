package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, userID, parsed)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "some-other-secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc123")
	require.NoError(t, err)
	require.Equal(t, "abc123", token)

	// scheme comparison is case-insensitive
	token, err = ParseBearerToken("bearer abc123")
	require.NoError(t, err)
	require.Equal(t, "abc123", token)

	_, err = ParseBearerToken("")
	require.ErrorIs(t, err, ErrMissingAuthHeader)

	_, err = ParseBearerToken("abc123")
	require.ErrorIs(t, err, ErrInvalidAuthHeader)

	_, err = ParseBearerToken("Basic abc123")
	require.ErrorIs(t, err, ErrInvalidAuthHeader)

	_, err = ParseBearerToken("Bearer ")
	require.ErrorIs(t, err, ErrInvalidAuthHeader)
}
