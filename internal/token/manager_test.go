package token

import (
	"testing"
	"time"

	"gestproy/config"

	"github.com/stretchr/testify/require"
)

func newTestManager(secret string) *Manager {
	return NewManager(config.JWTConfig{
		Secret:     secret,
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	})
}

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m := newTestManager("test-secret")

	signed, err := m.NewAccessToken(42)
	require.NoError(t, err)

	userID, tokenType, err := m.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
	require.Equal(t, TypeAccess, tokenType)
}

func TestManager_RefreshTokenType(t *testing.T) {
	m := newTestManager("test-secret")

	signed, err := m.NewRefreshToken(7)
	require.NoError(t, err)

	userID, tokenType, err := m.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, int64(7), userID)
	require.Equal(t, TypeRefresh, tokenType)
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	signed, err := newTestManager("secret-a").NewAccessToken(1)
	require.NoError(t, err)

	_, _, err = newTestManager("secret-b").Parse(signed)
	require.Error(t, err)
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := NewManager(config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  -time.Minute,
		RefreshTTL: time.Hour,
	})

	signed, err := m.NewAccessToken(1)
	require.NoError(t, err)

	_, _, err = m.Parse(signed)
	require.Error(t, err)
}

func TestManager_RejectsGarbage(t *testing.T) {
	_, _, err := newTestManager("test-secret").Parse("not-a-token")
	require.Error(t, err)
}
