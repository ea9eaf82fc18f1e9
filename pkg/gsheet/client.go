package gsheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/auth"
)

// Client issues Sheets API requests. It is safe for concurrent use.
type Client struct {
	tokens         auth.TokenSource
	http           *http.Client
	baseURL        string
	logger         *slog.Logger
	maxConcurrency int
}

// NewClient returns a Client that authenticates with tokens. Zero option
// fields take their DefaultOptions values.
func NewClient(tokens auth.TokenSource, opts Options) (*Client, error) {
	if tokens == nil {
		return nil, errors.New("gsheet: token source is required")
	}
	def := DefaultOptions()
	if opts.BaseURL == "" {
		opts.BaseURL = def.BaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = def.MaxConcurrency
	}
	return &Client{
		tokens:         tokens,
		http:           opts.HTTPClient,
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		logger:         opts.Logger,
		maxConcurrency: opts.MaxConcurrency,
	}, nil
}

// Spreadsheet returns a handle for the spreadsheet with the given id.
func (c *Client) Spreadsheet(id string) *Spreadsheet {
	return &Spreadsheet{client: c, id: id}
}

// do sends one request and decodes the JSON response into out. in, when
// non-nil, is sent as the JSON body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if err := c.tokens.EnsureValid(ctx); err != nil {
		return fmt.Errorf("ensure token: %w", err)
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := c.logger.With("request_id", reqID, "method", method, "path", path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrHTTP, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %w", ErrHTTP, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		herr := newHTTPError(method, path, resp.StatusCode, raw)
		logger.Warn("sheets request failed", "status", resp.StatusCode, "error", herr.Message)
		return herr
	}
	logger.Debug("sheets request", "status", resp.StatusCode, "duration", time.Since(start))

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}
