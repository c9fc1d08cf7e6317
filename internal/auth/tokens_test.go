package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"

func TestNewTokenService_Key(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", testKey, false},
		{"short", "abcd", true},
		{"not hex", strings.Repeat("z", keyHexSize), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenService(tt.key, time.Hour, time.Hour)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc, err := NewTokenService(testKey, time.Hour, 24*time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken("65f0c0ffee00000000000001")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	sub, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f0c0ffee00000000000001", sub)
}

func TestAccessToken_Rejected(t *testing.T) {
	svc, err := NewTokenService(testKey, time.Hour, time.Hour)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		expired, err := NewTokenService(testKey, -time.Minute, time.Hour)
		require.NoError(t, err)
		token, err := expired.GenerateAccessToken("u1")
		require.NoError(t, err)

		_, err = svc.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other key", func(t *testing.T) {
		other, err := NewTokenService(strings.Repeat("ab", 32), time.Hour, time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateAccessToken("u1")
		require.NoError(t, err)

		_, err = svc.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.VerifyAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRefreshToken(t *testing.T) {
	svc, err := NewTokenService(testKey, time.Hour, 10*24*time.Hour)
	require.NoError(t, err)

	a, exp, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	b, _, err := svc.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.WithinDuration(t, time.Now().Add(10*24*time.Hour), exp, time.Minute)

	assert.Len(t, HashRefreshToken(a), 64)
	assert.Equal(t, HashRefreshToken(a), HashRefreshToken(a))
	assert.NotEqual(t, HashRefreshToken(a), HashRefreshToken(b))
}
