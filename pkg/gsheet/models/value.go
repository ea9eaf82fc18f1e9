package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dimension indicates whether the outer axis of a value array is rows or columns.
type Dimension string

const (
	DimensionUnspecified Dimension = "DIMENSION_UNSPECIFIED"
	DimensionRows        Dimension = "ROWS"
	DimensionColumns     Dimension = "COLUMNS"
)

// ValueRenderOption controls how values are rendered in responses.
type ValueRenderOption string

const (
	FormattedValue   ValueRenderOption = "FORMATTED_VALUE"
	UnformattedValue ValueRenderOption = "UNFORMATTED_VALUE"
	Formula          ValueRenderOption = "FORMULA"
)

// DateTimeRenderOption controls how dates and times are rendered in responses.
type DateTimeRenderOption string

const (
	SerialNumber    DateTimeRenderOption = "SERIAL_NUMBER"
	FormattedString DateTimeRenderOption = "FORMATTED_STRING"
)

// ValueInputOption controls how written values are interpreted.
type ValueInputOption string

const (
	InputValueOptionUnspecified ValueInputOption = "INPUT_VALUE_OPTION_UNSPECIFIED"
	Raw                         ValueInputOption = "RAW"
	UserEntered                 ValueInputOption = "USER_ENTERED"
)

// ValueRange is a block of values addressed by an A1 range.
type ValueRange struct {
	// Range is the A1 range the values cover. Empty means absent.
	Range string `json:"range,omitempty"`
	// MajorDimension is the outer axis of Values.
	MajorDimension Dimension `json:"majorDimension,omitempty"`
	// Values holds the cell text. Rows (or columns) may be short or missing.
	Values Values `json:"values,omitempty"`
}

// Values is a ragged 2-D array of cell text. Decoding accepts strings,
// numbers, booleans and nulls so UNFORMATTED_VALUE responses can be read.
type Values [][]string

// UnmarshalJSON implements json.Unmarshaler.
func (v *Values) UnmarshalJSON(data []byte) error {
	var raw [][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = nil
		return nil
	}
	out := make(Values, len(raw))
	for i, row := range raw {
		out[i] = make([]string, len(row))
		for j, item := range row {
			s, err := scalarText(item)
			if err != nil {
				return fmt.Errorf("values[%d][%d]: %w", i, j, err)
			}
			out[i][j] = s
		}
	}
	*v = out
	return nil
}

func scalarText(item json.RawMessage) (string, error) {
	item = bytes.TrimSpace(item)
	if len(item) == 0 {
		return "", nil
	}
	switch item[0] {
	case '"':
		var s string
		err := json.Unmarshal(item, &s)
		return s, err
	case 't':
		return "TRUE", nil
	case 'f':
		return "FALSE", nil
	case 'n':
		return "", nil
	case '[', '{':
		return "", fmt.Errorf("unexpected composite value %s", item)
	}
	// numbers keep their textual form
	return string(item), nil
}

// BatchValueRanges is the response of values:batchGet.
type BatchValueRanges struct {
	SpreadsheetID string       `json:"spreadsheetId"`
	ValueRanges   []ValueRange `json:"valueRanges"`
}

// BatchUpdateValuesRequest is the body of values:batchUpdate.
type BatchUpdateValuesRequest struct {
	ValueInputOption             ValueInputOption     `json:"valueInputOption"`
	Data                         []ValueRange         `json:"data"`
	IncludeValuesInResponse      bool                 `json:"includeValuesInResponse"`
	ResponseValueRenderOption    ValueRenderOption    `json:"responseValueRenderOption,omitempty"`
	ResponseDateTimeRenderOption DateTimeRenderOption `json:"responseDateTimeRenderOption,omitempty"`
}

// UpdateValuesResponse reports the outcome of a single range write.
type UpdateValuesResponse struct {
	SpreadsheetID  string      `json:"spreadsheetId"`
	UpdatedRange   string      `json:"updatedRange"`
	UpdatedRows    int         `json:"updatedRows"`
	UpdatedColumns int         `json:"updatedColumns"`
	UpdatedCells   int         `json:"updatedCells"`
	UpdatedData    *ValueRange `json:"updatedData,omitempty"`
}

// BatchUpdateValuesResponse reports the outcome of values:batchUpdate.
type BatchUpdateValuesResponse struct {
	SpreadsheetID       string                 `json:"spreadsheetId"`
	TotalUpdatedRows    int                    `json:"totalUpdatedRows"`
	TotalUpdatedColumns int                    `json:"totalUpdatedColumns"`
	TotalUpdatedCells   int                    `json:"totalUpdatedCells"`
	TotalUpdatedSheets  int                    `json:"totalUpdatedSheets"`
	Responses           []UpdateValuesResponse `json:"responses"`
}
