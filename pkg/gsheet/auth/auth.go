// Package auth supplies bearer tokens for Sheets API requests.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// DefaultScope grants read/write access to spreadsheets.
const DefaultScope = "https://www.googleapis.com/auth/spreadsheets"

// ErrAuth indicates a token could not be obtained or refreshed.
var ErrAuth = errors.New("authentication failed")

// TokenSource hands out bearer tokens. Token never blocks and returns the
// last known token; EnsureValid may perform network I/O to refresh an
// expiring token and must be called before each outbound request.
// Implementations are safe for concurrent use.
type TokenSource interface {
	Token() string
	EnsureValid(ctx context.Context) error
}

// StaticToken is a pre-issued token that is never refreshed.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// EnsureValid implements TokenSource. Only an empty token is invalid.
func (t StaticToken) EnsureValid(context.Context) error {
	if t == "" {
		return fmt.Errorf("%w: empty static token", ErrAuth)
	}
	return nil
}
