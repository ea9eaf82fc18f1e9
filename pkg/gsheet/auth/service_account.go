package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

const jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// ServiceAccountKey is the JSON key file of a Google service account.
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// LoadServiceAccountKey reads and parses a service account key file.
func LoadServiceAccountKey(path string) (ServiceAccountKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ServiceAccountKey{}, fmt.Errorf("%w: read service account file: %v", ErrAuth, err)
	}
	return ParseServiceAccountKey(data)
}

// ParseServiceAccountKey parses the JSON of a service account key file.
func ParseServiceAccountKey(data []byte) (ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return ServiceAccountKey{}, fmt.Errorf("%w: parse service account file: %v", ErrAuth, err)
	}
	switch {
	case key.ClientEmail == "":
		return ServiceAccountKey{}, fmt.Errorf("%w: service account key has no client_email", ErrAuth)
	case key.PrivateKey == "":
		return ServiceAccountKey{}, fmt.Errorf("%w: service account key has no private_key", ErrAuth)
	case key.TokenURI == "":
		return ServiceAccountKey{}, fmt.Errorf("%w: service account key has no token_uri", ErrAuth)
	}
	return key, nil
}

// ServiceAccountOptions configures a ServiceAccount.
type ServiceAccountOptions struct {
	// Scope is the OAuth scope requested. Defaults to DefaultScope.
	Scope string
	// HTTPClient performs token exchanges. Defaults to a client with a 30s timeout.
	HTTPClient *http.Client
	// Logger receives refresh events. Defaults to slog.Default().
	Logger *slog.Logger
	// Now overrides the clock.
	Now func() time.Time
}

// ServiceAccount exchanges signed JWT assertions for access tokens and
// refreshes them before they expire.
type ServiceAccount struct {
	key     ServiceAccountKey
	signKey *rsa.PrivateKey
	scope   string
	client  *http.Client
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.RWMutex
	token   AccessToken
	refresh singleflight.Group
}

var _ TokenSource = (*ServiceAccount)(nil)

// NewServiceAccount validates the key and performs the first token exchange.
func NewServiceAccount(ctx context.Context, key ServiceAccountKey, opts ServiceAccountOptions) (*ServiceAccount, error) {
	signKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %v", ErrAuth, err)
	}

	sa := &ServiceAccount{
		key:     key,
		signKey: signKey,
		scope:   opts.Scope,
		client:  opts.HTTPClient,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if sa.scope == "" {
		sa.scope = DefaultScope
	}
	if sa.client == nil {
		sa.client = &http.Client{Timeout: 30 * time.Second}
	}
	if sa.logger == nil {
		sa.logger = slog.Default()
	}
	if sa.now == nil {
		sa.now = time.Now
	}

	if err := sa.fetch(ctx); err != nil {
		return nil, err
	}
	return sa, nil
}

// NewServiceAccountFromFile loads the key at path and calls NewServiceAccount.
func NewServiceAccountFromFile(ctx context.Context, path string, opts ServiceAccountOptions) (*ServiceAccount, error) {
	key, err := LoadServiceAccountKey(path)
	if err != nil {
		return nil, err
	}
	return NewServiceAccount(ctx, key, opts)
}

// Token returns the current access token.
func (sa *ServiceAccount) Token() string {
	sa.mu.RLock()
	defer sa.mu.RUnlock()
	return sa.token.Value
}

// EnsureValid refreshes the token when it is about to expire. Concurrent
// callers share a single exchange, which is not cancelled when one of them
// gives up; each caller only stops waiting when its own ctx is done.
func (sa *ServiceAccount) EnsureValid(ctx context.Context) error {
	if !sa.expired() {
		return nil
	}
	ch := sa.refresh.DoChan("token", func() (any, error) {
		if !sa.expired() {
			return nil, nil
		}
		return nil, sa.fetch(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("%w: waiting for token refresh: %w", ErrAuth, ctx.Err())
	}
}

func (sa *ServiceAccount) expired() bool {
	sa.mu.RLock()
	defer sa.mu.RUnlock()
	return sa.token.Expired(sa.now())
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (sa *ServiceAccount) fetch(ctx context.Context) error {
	now := sa.now()
	assertion, err := sa.assertion(now)
	if err != nil {
		return err
	}

	form := url.Values{
		"grant_type": {jwtBearerGrant},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sa.key.TokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: build token request: %v", ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sa.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: token request: %v", ErrAuth, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read token response: %v", ErrAuth, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(body, "error_description").String()
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return fmt.Errorf("%w: token endpoint returned %d: %s", ErrAuth, resp.StatusCode, msg)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return fmt.Errorf("%w: decode token response: %v", ErrAuth, err)
	}
	if tr.AccessToken == "" {
		return fmt.Errorf("%w: token response has no access_token", ErrAuth)
	}

	token := NewAccessToken(tr.AccessToken, tr.ExpiresIn, now)
	sa.mu.Lock()
	sa.token = token
	sa.mu.Unlock()

	sa.logger.Info("access token refreshed",
		"client_email", sa.key.ClientEmail,
		"expires_at", token.ExpiresAt.Format(time.RFC3339))
	return nil
}

// assertion builds the RS256-signed JWT presented to the token endpoint.
func (sa *ServiceAccount) assertion(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":   sa.key.ClientEmail,
		"scope": sa.scope,
		"aud":   sa.key.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if sa.key.PrivateKeyID != "" {
		tok.Header["kid"] = sa.key.PrivateKeyID
	}
	signed, err := tok.SignedString(sa.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: sign assertion: %v", ErrAuth, err)
	}
	return signed, nil
}
