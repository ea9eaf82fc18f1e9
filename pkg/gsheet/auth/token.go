package auth

import "time"

// expirySkew makes a token count as expired slightly before the server does.
const expirySkew = 10 * time.Second

// AccessToken is a bearer token with its expiry.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// NewAccessToken returns a token issued at now that the server considers
// valid for expiresIn seconds.
func NewAccessToken(value string, expiresIn int64, now time.Time) AccessToken {
	return AccessToken{
		Value:     value,
		ExpiresAt: now.Add(time.Duration(expiresIn)*time.Second - expirySkew),
	}
}

// Expired reports whether the token should be refreshed at now.
func (t AccessToken) Expired(now time.Time) bool {
	return t.Value == "" || !now.Before(t.ExpiresAt)
}
