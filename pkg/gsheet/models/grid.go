package models

// GridRange is the API's rectangular bound: 0-based indices, start
// inclusive, end exclusive. Missing end indices mean unbounded.
type GridRange struct {
	SheetID          int `json:"sheetId,omitempty"`
	StartRowIndex    int `json:"startRowIndex,omitempty"`
	EndRowIndex      int `json:"endRowIndex,omitempty"`
	StartColumnIndex int `json:"startColumnIndex,omitempty"`
	EndColumnIndex   int `json:"endColumnIndex,omitempty"`
}

// GridProperties describes the dimensions of a grid sheet.
type GridProperties struct {
	RowCount                int  `json:"rowCount,omitempty"`
	ColumnCount             int  `json:"columnCount,omitempty"`
	FrozenRowCount          int  `json:"frozenRowCount,omitempty"`
	FrozenColumnCount       int  `json:"frozenColumnCount,omitempty"`
	HideGridlines           bool `json:"hideGridlines,omitempty"`
	RowGroupControlAfter    bool `json:"rowGroupControlAfter,omitempty"`
	ColumnGroupControlAfter bool `json:"columnGroupControlAfter,omitempty"`
}

// NamedRange is a named reference to a GridRange.
type NamedRange struct {
	NamedRangeID string     `json:"namedRangeId,omitempty"`
	Name         string     `json:"name,omitempty"`
	Range        *GridRange `json:"range,omitempty"`
}

// ProtectedRange marks a range that only some editors may change.
type ProtectedRange struct {
	ProtectedRangeID  int         `json:"protectedRangeId,omitempty"`
	Range             *GridRange  `json:"range,omitempty"`
	NamedRangeID      string      `json:"namedRangeId,omitempty"`
	Description       string      `json:"description,omitempty"`
	WarningOnly       bool        `json:"warningOnly,omitempty"`
	UnprotectedRanges []GridRange `json:"unprotectedRanges,omitempty"`
}
