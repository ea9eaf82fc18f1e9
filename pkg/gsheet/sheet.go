package gsheet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ukaji3/gsheet-go/pkg/gsheet/a1"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/grid"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

// Sheet addresses one sheet of a spreadsheet by title.
type Sheet struct {
	spreadsheet *Spreadsheet
	title       string
}

// RangeData is one range of values to write.
type RangeData struct {
	// Range is an A1 range relative to the sheet, e.g. "A1:B2".
	Range  string
	Values [][]string
}

// Title returns the sheet title.
func (s *Sheet) Title() string { return s.title }

// Values reads every value of the sheet.
func (s *Sheet) Values(ctx context.Context, opts ValuesOptions) (*models.ValueRange, error) {
	return s.get(ctx, a1.QualifyRange(s.title, ""), opts)
}

// RangeValues reads the values of rng. rng is validated before any request
// is sent.
func (s *Sheet) RangeValues(ctx context.Context, rng string, opts ValuesOptions) (*models.ValueRange, error) {
	g, err := a1.ParseRange(rng)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, a1.QualifyRange(s.title, g.String()), opts)
}

// Cells reads the whole sheet and returns one cell per coordinate of the
// range reported by the API, in row-major order.
//
// Titles containing '!' cannot be read this way: the range echoed by the
// API then holds more than one '!' and fails with ErrInvalidRange.
func (s *Sheet) Cells(ctx context.Context, opts ValuesOptions) ([]models.Cell, error) {
	vr, err := s.Values(ctx, opts)
	if err != nil {
		return nil, err
	}
	return grid.ToCellList(s.spreadsheet.id, s.title, *vr)
}

// CellMap reads the whole sheet and returns its cells grouped by column
// letter, then by row index.
func (s *Sheet) CellMap(ctx context.Context, opts ValuesOptions) (map[string]map[int]models.Cell, error) {
	vr, err := s.Values(ctx, opts)
	if err != nil {
		return nil, err
	}
	return grid.ToColumnMap(s.spreadsheet.id, s.title, *vr)
}

// RangeCells reads rng and returns one cell per coordinate in it.
func (s *Sheet) RangeCells(ctx context.Context, rng string, opts ValuesOptions) ([]models.Cell, error) {
	vr, err := s.RangeValues(ctx, rng, opts)
	if err != nil {
		return nil, err
	}
	return grid.ToCellList(s.spreadsheet.id, s.title, *vr)
}

// BatchGet reads several ranges of the sheet in one request. Ranges are
// passed through unparsed so open-ended forms such as "A:C" are allowed.
func (s *Sheet) BatchGet(ctx context.Context, ranges []string, opts ValuesOptions) (*models.BatchValueRanges, error) {
	q := opts.query()
	for _, r := range ranges {
		q.Add("ranges", a1.QualifyRange(s.title, r))
	}
	var out models.BatchValueRanges
	if err := s.spreadsheet.client.do(ctx, http.MethodGet, s.spreadsheet.path("/values:batchGet"), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchUpdate writes several ranges of the sheet in one request. Every range
// is validated before the request is sent.
func (s *Sheet) BatchUpdate(ctx context.Context, data []RangeData, opts UpdateOptions) (*models.BatchUpdateValuesResponse, error) {
	body := models.BatchUpdateValuesRequest{
		ValueInputOption:             opts.inputOption(),
		Data:                         make([]models.ValueRange, 0, len(data)),
		IncludeValuesInResponse:      opts.IncludeValuesInResponse,
		ResponseValueRenderOption:    orDefault(opts.ResponseValueRenderOption, models.FormattedValue),
		ResponseDateTimeRenderOption: orDefault(opts.ResponseDateTimeRenderOption, models.SerialNumber),
	}
	for i, d := range data {
		g, err := a1.ParseRange(d.Range)
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}
		body.Data = append(body.Data, models.ValueRange{
			Range:          a1.QualifyRange(s.title, g.String()),
			MajorDimension: models.DimensionRows,
			Values:         d.Values,
		})
	}

	var out models.BatchUpdateValuesResponse
	if err := s.spreadsheet.client.do(ctx, http.MethodPost, s.spreadsheet.path("/values:batchUpdate"), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update writes values into rng.
func (s *Sheet) Update(ctx context.Context, rng string, values [][]string, opts UpdateOptions) (*models.UpdateValuesResponse, error) {
	g, err := a1.ParseRange(rng)
	if err != nil {
		return nil, err
	}
	qualified := a1.QualifyRange(s.title, g.String())
	body := models.ValueRange{
		Range:          qualified,
		MajorDimension: models.DimensionRows,
		Values:         values,
	}

	var out models.UpdateValuesResponse
	if err := s.spreadsheet.client.do(ctx, http.MethodPut, s.valuesPath(qualified), opts.query(), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Sheet) get(ctx context.Context, qualified string, opts ValuesOptions) (*models.ValueRange, error) {
	var out models.ValueRange
	if err := s.spreadsheet.client.do(ctx, http.MethodGet, s.valuesPath(qualified), opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Sheet) valuesPath(qualified string) string {
	return s.spreadsheet.path("/values/" + url.PathEscape(qualified))
}
