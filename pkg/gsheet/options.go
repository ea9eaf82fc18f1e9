// Package gsheet is a client for the Google Sheets v4 REST API.
package gsheet

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

// DefaultBaseURL is the spreadsheets collection of the Sheets v4 API.
const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Options configures a Client.
type Options struct {
	// BaseURL is the spreadsheets collection URL.
	BaseURL string
	// HTTPClient sends requests. If nil, a client with Timeout is used.
	HTTPClient *http.Client
	// Timeout bounds each request when HTTPClient is nil.
	Timeout time.Duration
	// Logger receives request logs. Defaults to slog.Default().
	Logger *slog.Logger
	// MaxConcurrency limits parallel requests issued by multi-sheet reads.
	MaxConcurrency int
}

// DefaultOptions returns the default client options.
func DefaultOptions() Options {
	return Options{
		BaseURL:        DefaultBaseURL,
		Timeout:        30 * time.Second,
		MaxConcurrency: 4,
	}
}

// ValuesOptions configures value reads. Zero fields use the API defaults:
// ROWS, FORMATTED_VALUE and SERIAL_NUMBER.
type ValuesOptions struct {
	MajorDimension       models.Dimension
	ValueRenderOption    models.ValueRenderOption
	DateTimeRenderOption models.DateTimeRenderOption
}

func (o ValuesOptions) query() url.Values {
	q := url.Values{}
	q.Set("majorDimension", string(orDefault(o.MajorDimension, models.DimensionRows)))
	q.Set("valueRenderOption", string(orDefault(o.ValueRenderOption, models.FormattedValue)))
	q.Set("dateTimeRenderOption", string(orDefault(o.DateTimeRenderOption, models.SerialNumber)))
	return q
}

// UpdateOptions configures value writes. ValueInputOption defaults to
// USER_ENTERED; the response render options default like ValuesOptions.
type UpdateOptions struct {
	ValueInputOption             models.ValueInputOption
	IncludeValuesInResponse      bool
	ResponseValueRenderOption    models.ValueRenderOption
	ResponseDateTimeRenderOption models.DateTimeRenderOption
}

func (o UpdateOptions) inputOption() models.ValueInputOption {
	return orDefault(o.ValueInputOption, models.UserEntered)
}

func (o UpdateOptions) query() url.Values {
	q := url.Values{}
	q.Set("valueInputOption", string(o.inputOption()))
	q.Set("includeValuesInResponse", strconv.FormatBool(o.IncludeValuesInResponse))
	q.Set("responseValueRenderOption", string(orDefault(o.ResponseValueRenderOption, models.FormattedValue)))
	q.Set("responseDateTimeRenderOption", string(orDefault(o.ResponseDateTimeRenderOption, models.SerialNumber)))
	return q
}

// GetOptions configures spreadsheet metadata reads.
type GetOptions struct {
	// Ranges limits grid data to these A1 ranges.
	Ranges []string
	// IncludeGridData requests cell data along with metadata.
	IncludeGridData bool
	// ExcludeTablesInBandedRanges omits table banding from the response.
	ExcludeTablesInBandedRanges bool
}

func (o GetOptions) query() url.Values {
	q := url.Values{}
	for _, r := range o.Ranges {
		q.Add("ranges", r)
	}
	if o.IncludeGridData {
		q.Set("includeGridData", "true")
	}
	if o.ExcludeTablesInBandedRanges {
		q.Set("excludeTablesInBandedRanges", "true")
	}
	return q
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
