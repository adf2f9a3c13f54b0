package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	userID := uuid.New()
	token, err := NewIssuer("s3cret", 4*time.Hour).Issue(userID)
	require.NoError(t, err)

	claims, err := NewParser("s3cret").Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(4*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseExpired(t *testing.T) {
	issuer := NewIssuer("s3cret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewParser("s3cret").Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseRejectsForgeries(t *testing.T) {
	token, err := NewIssuer("other", time.Hour).Issue(uuid.New())
	require.NoError(t, err)
	_, err = NewParser("s3cret").Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewParser("s3cret").Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = NewParser("s3cret").Parse(noUser)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("Secr3t!pass")
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(hash, "Secr3t!pass"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
}
