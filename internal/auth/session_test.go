package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sga", "access_token")
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "1",
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoginPersistsToken(t *testing.T) {
	path := tokenPath(t)
	s := NewSession(path, zerolog.Nop())
	assert.Equal(t, StateAnonymous, s.State())

	require.NoError(t, s.Login("opaque-token"))
	assert.Equal(t, StateActive, s.State())

	token, ok := s.AccessToken()
	assert.True(t, ok)
	assert.Equal(t, "opaque-token", token)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token\n", string(raw))
}

func TestLoginEmptyToken(t *testing.T) {
	s := NewSession(tokenPath(t), zerolog.Nop())
	assert.ErrorIs(t, s.Login("   "), ErrEmptyToken)
	assert.Equal(t, StateAnonymous, s.State())
}

func TestNewSessionLoadsPersistedToken(t *testing.T) {
	path := tokenPath(t)
	first := NewSession(path, zerolog.Nop())
	require.NoError(t, first.Login("persisted"))

	second := NewSession(path, zerolog.Nop())
	token, ok := second.AccessToken()
	assert.True(t, ok)
	assert.Equal(t, "persisted", token)
	assert.Equal(t, StateActive, second.State())
}

func TestExpiredJWTReportsExpired(t *testing.T) {
	s := NewSession(tokenPath(t), zerolog.Nop())
	require.NoError(t, s.Login(signedToken(t, time.Now().Add(-time.Hour))))
	assert.Equal(t, StateExpired, s.State())

	// The token is still attached: the backend has the final word.
	_, ok := s.AccessToken()
	assert.True(t, ok)
}

func TestFutureJWTStaysActive(t *testing.T) {
	s := NewSession(tokenPath(t), zerolog.Nop())
	require.NoError(t, s.Login(signedToken(t, time.Now().Add(time.Hour))))
	assert.Equal(t, StateActive, s.State())
}

func TestClearWipesTokenAndNotifies(t *testing.T) {
	path := tokenPath(t)
	s := NewSession(path, zerolog.Nop())
	require.NoError(t, s.Login("tok"))

	notified := false
	s.OnClear(func() { notified = true })
	s.Clear()

	assert.Equal(t, StateAnonymous, s.State())
	_, ok := s.AccessToken()
	assert.False(t, ok)
	assert.True(t, notified)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
