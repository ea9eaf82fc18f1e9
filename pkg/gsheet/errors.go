package gsheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/a1"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/auth"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/grid"
)

// Errors raised while interpreting ranges and values.
var (
	ErrInvalidReference = a1.ErrInvalidReference
	ErrInvalidRange     = a1.ErrInvalidRange
	ErrMissingRange     = grid.ErrMissingRange
)

// ErrAuth indicates the token source could not supply a valid token.
var ErrAuth = auth.ErrAuth

// ErrHTTP indicates a transport failure or a non-2xx response.
var ErrHTTP = errors.New("sheets request failed")

// ErrDecode indicates a response body that could not be decoded.
var ErrDecode = errors.New("sheets response could not be decoded")

// HTTPError is a non-2xx response from the Sheets API.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	// Status is the API error status, e.g. "NOT_FOUND".
	Status  string
	Message string
	Body    []byte
}

func newHTTPError(method, path string, code int, body []byte) *HTTPError {
	e := &HTTPError{
		Method:     method,
		Path:       path,
		StatusCode: code,
		Body:       body,
	}
	if apiErr := gjson.GetBytes(body, "error"); apiErr.IsObject() {
		e.Message = apiErr.Get("message").String()
		e.Status = apiErr.Get("status").String()
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}

func (e *HTTPError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is reports whether target is ErrHTTP.
func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTP
}

// DecodeError wraps a JSON decoding failure.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
