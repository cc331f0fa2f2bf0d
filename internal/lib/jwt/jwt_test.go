package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsphere/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	user := models.User{ID: 42, Email: "organizer@test.com"}

	token, err := NewToken(user, "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "organizer@test.com", claims.Email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewToken(models.User{ID: 1, Email: "a@b.c"}, "secret-one", time.Hour)
	require.NoError(t, err)

	_, err = Parse(token, "secret-two")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := NewToken(models.User{ID: 1, Email: "a@b.c"}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Parse("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
