package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenExpiry(t *testing.T) {
	now := time.Unix(1_000, 0)
	tok := NewAccessToken("abc", 60, now)

	assert.Equal(t, now.Add(50*time.Second), tok.ExpiresAt)
	assert.False(t, tok.Expired(now))
	assert.False(t, tok.Expired(now.Add(49*time.Second)))
	assert.True(t, tok.Expired(now.Add(50*time.Second)))
	assert.True(t, AccessToken{}.Expired(now), "empty token is always expired")
}

func TestStaticToken(t *testing.T) {
	var ts TokenSource = StaticToken("ya29.token")
	assert.Equal(t, "ya29.token", ts.Token())
	assert.NoError(t, ts.EnsureValid(context.Background()))

	assert.ErrorIs(t, StaticToken("").EnsureValid(context.Background()), ErrAuth)
}
